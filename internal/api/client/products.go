package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/storefront/pkg/types"
)

// ProductFilter is the catalog query sent to GET /api/products. Zero values
// are omitted.
type ProductFilter struct {
	CategoryIDs []string
	BrandIDs    []string
	MinPrice    *float64
	MaxPrice    *float64
	Search      string
	SortBy      string
	Page        int
	Limit       int
}

func (f ProductFilter) values() url.Values {
	v := url.Values{}
	if len(f.CategoryIDs) > 0 {
		v.Set("categoryIds", strings.Join(f.CategoryIDs, ","))
	}
	if len(f.BrandIDs) > 0 {
		v.Set("brandIds", strings.Join(f.BrandIDs, ","))
	}
	if f.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ListProducts returns one page of the catalog.
func (c *Client) ListProducts(ctx context.Context, f ProductFilter) (*ProductPage, error) {
	path := "/api/products"
	if q := f.values().Encode(); q != "" {
		path += "?" + q
	}

	var page ProductPage
	if err := c.getData(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddProductRequest is the ingestion request.
type AddProductRequest struct {
	ProductID  string `json:"productId"`
	CategoryID string `json:"categoryId,omitempty"`
	BrandID    string `json:"brandId,omitempty"`
}

// AddProduct ingests a marketplace item and returns the stored product ID.
func (c *Client) AddProduct(ctx context.Context, req AddProductRequest) (string, error) {
	var resp struct {
		ProductID string `json:"productId"`
	}
	if err := c.post(ctx, "/api/products/add", req, &resp); err != nil {
		return "", err
	}
	return resp.ProductID, nil
}

// GetProduct returns a product merged with live marketplace data.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	if err := c.getData(ctx, "/api/products/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateProduct applies a partial update.
func (c *Client) UpdateProduct(ctx context.Context, id string, patch map[string]any) (*domain.Product, error) {
	var p domain.Product
	if err := c.sendData(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.del(ctx, "/api/products/"+url.PathEscape(id), nil)
}
