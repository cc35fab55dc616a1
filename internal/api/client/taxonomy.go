package client

import (
	"context"
	"net/http"
	"net/url"

	domain "github.com/donaldgifford/storefront/pkg/types"
)

// ListCategories returns all categories with product counts.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.getData(ctx, "/api/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	var out domain.Category
	body := map[string]string{"name": name}
	if err := c.sendData(ctx, http.MethodPost, "/api/categories", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.del(ctx, "/api/categories/"+url.PathEscape(id), nil)
}

// brandRequest contains only the fields the API accepts for brand writes.
type brandRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// ListBrands returns all brands with product counts.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var out []domain.Brand
	if err := c.getData(ctx, "/api/brands", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBrand adds a brand. The server derives the slug.
func (c *Client) CreateBrand(ctx context.Context, name, logo string) (*domain.Brand, error) {
	var out domain.Brand
	if err := c.sendData(ctx, http.MethodPost, "/api/brands", brandRequest{Name: name, Logo: logo}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBrand removes a brand.
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.del(ctx, "/api/brands/"+url.PathEscape(id), nil)
}
