package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront/internal/catalog"
	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/store"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// ProductsHandler serves the storefront catalog and product administration.
type ProductsHandler struct {
	products catalog.ProductService
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(p catalog.ProductService) *ProductsHandler {
	return &ProductsHandler{products: p}
}

// --- Input/Output types ---

// ListProductsInput is the catalog query. Prices are parsed by the handler
// so a malformed value is rejected instead of ignored.
type ListProductsInput struct {
	CategoryIDs string `query:"categoryIds" doc:"Comma-separated category IDs"`
	BrandIDs    string `query:"brandIds"    doc:"Comma-separated brand IDs"`
	MinPrice    string `query:"minPrice"    doc:"Minimum price, inclusive"`
	MaxPrice    string `query:"maxPrice"    doc:"Maximum price, inclusive"`
	Search      string `query:"search"      doc:"Case-insensitive title search"`
	SortBy      string `query:"sortBy"      doc:"relevance (default), price-asc or price-desc"`
	Page        int    `query:"page"        doc:"1-based page number (default 1)"`
	Limit       int    `query:"limit"       doc:"Page size (default 12)"`
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ListProductsOutput is the response for the catalog query.
type ListProductsOutput struct {
	Body struct {
		Success bool        `json:"success"`
		Data    ProductPage `json:"data"`
	}
}

// AddProductInput is the ingestion request.
type AddProductInput struct {
	Body struct {
		ProductID  string `json:"productId"            minLength:"1" doc:"Marketplace item ID" example:"MLB3846027829"`
		CategoryID string `json:"categoryId,omitempty" required:"false" doc:"Category to file the product under"`
		BrandID    string `json:"brandId,omitempty"    required:"false" doc:"Brand of the product"`
	}
}

// AddProductOutput is the response for a successful ingestion.
type AddProductOutput struct {
	Body struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ProductID string `json:"productId"`
	}
}

// ProductIDInput addresses a single product.
type ProductIDInput struct {
	ID string `path:"id" doc:"Product ID (marketplace item ID)"`
}

// GetProductOutput is the live product detail.
type GetProductOutput struct {
	Body struct {
		Success bool                  `json:"success"`
		Data    *domain.ProductDetail `json:"data"`
	}
}

// UpdateProductInput is a partial product update. Only title, price,
// currency_id, thumbnail, condition, available_quantity, seller_nickname,
// permalink, categoryId and brandId are applied.
type UpdateProductInput struct {
	ID   string `path:"id" doc:"Product ID"`
	Body map[string]any
}

// ProductOutput wraps a single product.
type ProductOutput struct {
	Body struct {
		Success bool            `json:"success"`
		Data    *domain.Product `json:"data"`
	}
}

// MessageOutput is a success envelope carrying only a message.
type MessageOutput struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}

// --- Handlers ---

// ListProducts returns one page of the filtered, sorted catalog.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	q, err := input.query()
	if err != nil {
		return nil, mapError(err)
	}

	products, total, err := h.products.ListProducts(ctx, q)
	if err != nil {
		return nil, mapError(err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	resp := &ListProductsOutput{}
	resp.Body.Success = true
	resp.Body.Data = ProductPage{Products: products, Total: total}
	return resp, nil
}

func (in *ListProductsInput) query() (*store.ProductQuery, error) {
	q := &store.ProductQuery{
		CategoryIDs: splitIDs(in.CategoryIDs),
		BrandIDs:    splitIDs(in.BrandIDs),
		Search:      in.Search,
		SortBy:      in.SortBy,
		Page:        in.Page,
		PageSize:    in.Limit,
	}

	var err error
	if q.MinPrice, err = parsePrice("minPrice", in.MinPrice); err != nil {
		return nil, err
	}
	if q.MaxPrice, err = parsePrice("maxPrice", in.MaxPrice); err != nil {
		return nil, err
	}
	return q, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for part := range strings.SplitSeq(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func parsePrice(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent filter
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errs.Invalid(field, "must be a number")
	}
	return &v, nil
}

// AddProduct ingests a marketplace item into the catalog.
func (h *ProductsHandler) AddProduct(
	ctx context.Context,
	input *AddProductInput,
) (*AddProductOutput, error) {
	id, err := h.products.AddProduct(ctx, catalog.AddProductInput{
		ProductID:  input.Body.ProductID,
		CategoryID: input.Body.CategoryID,
		BrandID:    input.Body.BrandID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	resp := &AddProductOutput{}
	resp.Body.Success = true
	resp.Body.Message = "product added"
	resp.Body.ProductID = id
	return resp, nil
}

// GetProduct returns a product merged with its live marketplace data.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *ProductIDInput,
) (*GetProductOutput, error) {
	d, err := h.products.GetProductDetail(ctx, input.ID)
	if err != nil {
		return nil, notFound(err, "product")
	}

	resp := &GetProductOutput{}
	resp.Body.Success = true
	resp.Body.Data = d
	return resp, nil
}

// UpdateProduct applies a partial update to a product.
func (h *ProductsHandler) UpdateProduct(
	ctx context.Context,
	input *UpdateProductInput,
) (*ProductOutput, error) {
	p, err := h.products.UpdateProduct(ctx, input.ID, input.Body)
	if err != nil {
		return nil, notFound(err, "product")
	}

	resp := &ProductOutput{}
	resp.Body.Success = true
	resp.Body.Data = p
	return resp, nil
}

// DeleteProduct removes a product and its pictures.
func (h *ProductsHandler) DeleteProduct(
	ctx context.Context,
	input *ProductIDInput,
) (*MessageOutput, error) {
	if err := h.products.DeleteProduct(ctx, input.ID); err != nil {
		return nil, notFound(err, "product")
	}

	resp := &MessageOutput{}
	resp.Body.Success = true
	resp.Body.Message = "product deleted"
	return resp, nil
}

// RegisterProductRoutes registers the catalog and product endpoints.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	UseEnvelopeErrors()

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "List products",
		Description: "Returns one page of the catalog filtered by categories, brands, price range and title, with the total match count.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID:   "add-product",
		Method:        http.MethodPost,
		Path:          "/api/products/add",
		Summary:       "Add a marketplace product",
		Description:   "Fetches a MercadoLibre item and stores it with its pictures. Items already registered are rejected with 409.",
		Tags:          []string{"products"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusBadRequest, http.StatusNotFound, http.StatusConflict,
			http.StatusInternalServerError, http.StatusBadGateway,
		},
	}, h.AddProduct)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/products/{id}",
		Summary:     "Get a product",
		Description: "Returns the stored product overlaid with live marketplace details.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPut,
		Path:        "/api/products/{id}",
		Summary:     "Update a product",
		Description: "Applies an allow-listed partial update. Unknown fields and nulls are ignored.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, h.UpdateProduct)

	huma.Register(api, huma.Operation{
		OperationID: "delete-product",
		Method:      http.MethodDelete,
		Path:        "/api/products/{id}",
		Summary:     "Delete a product",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound},
	}, h.DeleteProduct)
}
