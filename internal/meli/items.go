package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/credentials"
	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/metrics"
)

// Client implements ItemFetcher against the MercadoLibre items API. An
// authorization failure triggers exactly one token refresh and one retry.
type Client struct {
	apiURL    string
	creds     credentials.Store
	refresher TokenRefresher

	caller caller
	logger *slog.Logger
	tracer trace.Tracer
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIURL overrides the default API base URL.
func WithAPIURL(u string) ClientOption {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(u, "/")
	}
}

// WithClientHTTPClient overrides the default HTTP client.
func WithClientHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.caller.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every request goes
// through Wait() first.
func WithRateLimiter(rl *RateLimiter) ClientOption {
	return func(c *Client) {
		c.caller.limiter = rl
	}
}

// WithClientLogger sets the logger.
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithClientTracerProvider overrides the global tracer provider.
func WithClientTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(c *Client) {
		c.tracer = tp.Tracer(instrumentationName)
	}
}

// WithClientMeterProvider overrides the global meter provider.
func WithClientMeterProvider(mp metric.MeterProvider) ClientOption {
	return func(c *Client) {
		client, limiter := c.caller.client, c.caller.limiter
		c.caller = newCaller(mp)
		c.caller.client, c.caller.limiter = client, limiter
	}
}

// NewClient creates a new MercadoLibre items client.
func NewClient(creds credentials.Store, refresher TokenRefresher, opts ...ClientOption) *Client {
	c := &Client{
		apiURL:    DefaultAPIURL,
		creds:     creds,
		refresher: refresher,
		caller:    newCaller(otel.GetMeterProvider()),
		logger:    slog.Default(),
		tracer:    otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIURL returns the configured API base URL.
func (c *Client) APIURL() string {
	return c.apiURL
}

// Item implements ItemFetcher.Item.
func (c *Client) Item(ctx context.Context, id string) (*Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.Invalid("productId", "is required")
	}

	ctx, span := c.tracer.Start(ctx, "meli.get_item",
		trace.WithAttributes(attribute.String("meli.item_id", id)))
	defer span.End()

	item, err := c.item(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return item, nil
}

func (c *Client) item(ctx context.Context, id string) (*Item, error) {
	token, ok, err := c.creds.Get(ctx, credentials.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("reading access token: %w", err)
	}
	if !ok || token == "" {
		return nil, &errs.ConfigurationError{Setting: "marketplace.access_token"}
	}

	u := ItemURL(c.apiURL, url.PathEscape(id))

	status, body, err := c.get(ctx, u, token)
	if err != nil {
		return nil, err
	}

	if isAuthFailure(status) {
		c.logger.Warn("marketplace rejected access token, refreshing",
			"item_id", id, "status", status)
		metrics.AuthRetriesTotal.Inc()

		pair, err := c.refresher.RefreshIfStale(ctx, token)
		if err != nil {
			return nil, err
		}

		status, body, err = c.get(ctx, u, pair.AccessToken)
		if err != nil {
			return nil, err
		}
		if isAuthFailure(status) {
			return nil, &errs.UpstreamAuthError{
				Status:  status,
				Message: errorMessage(body),
				Body:    string(body),
			}
		}
	}

	if !isSuccess(status) {
		return nil, &errs.UpstreamError{Status: status, Body: string(body)}
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, &errs.UpstreamError{
			Status: status,
			Body:   string(body),
			Err:    fmt.Errorf("parsing item response: %w", err),
		}
	}

	return &item, nil
}

func (c *Client) get(ctx context.Context, u, token string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return c.caller.do(ctx, "get_item", req)
}
