// Package client provides a thin HTTP client for the storefront API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
)

// Client is a thin HTTP client for the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
	ProductID  string
}

func (e *APIError) Error() string {
	if e.ProductID != "" {
		return fmt.Sprintf("API error (HTTP %d): %s [productId=%s]", e.StatusCode, e.Message, e.ProductID)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// envelope is the shape shared by success and failure responses.
type envelope struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error"`
	ProductID string          `json:"productId"`
	Data      json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) put(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPut, path, body, dst)
}

func (c *Client) del(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodDelete, path, nil, dst)
}

// do sends body as JSON and decodes the whole response body into dst.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var (
		bodyReader  io.Reader
		contentType string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, contentType, bodyReader, dst)
}

// send issues the request with a prepared body and decodes the whole
// response body into dst.
func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader, dst any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, respBody)
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// getData decodes the "data" member of a success envelope into dst.
func (c *Client) getData(ctx context.Context, path string, dst any) error {
	var env envelope
	if err := c.get(ctx, path, &env); err != nil {
		return err
	}
	return unwrapData(env, dst)
}

func (c *Client) sendData(ctx context.Context, method, path string, body, dst any) error {
	var env envelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return err
	}
	return unwrapData(env, dst)
}

func unwrapData(env envelope, dst any) error {
	if len(env.Data) == 0 || dst == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
		apiErr.ProductID = env.ProductID
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func isConnectionRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(err.Error(), "connection refused")
}
