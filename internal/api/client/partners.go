package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	domain "github.com/donaldgifford/storefront/pkg/types"
)

// ListPartners returns all partners in creation order.
func (c *Client) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	var out []domain.Partner
	if err := c.getData(ctx, "/api/partners", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePartner uploads a partner logo as multipart/form-data. An empty
// contentType lets the server pick its default.
func (c *Client) CreatePartner(ctx context.Context, name, filename, contentType string, image io.Reader) (*domain.Partner, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("writing name field: %w", err)
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating image part: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("writing image part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	var env envelope
	if err := c.send(ctx, http.MethodPost, "/api/partners", w.FormDataContentType(), &buf, &env); err != nil {
		return nil, err
	}
	var out domain.Partner
	if err := unwrapData(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePartner removes a partner.
func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.del(ctx, "/api/partners/"+url.PathEscape(id), nil)
}
