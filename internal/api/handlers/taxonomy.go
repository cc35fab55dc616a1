package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront/internal/catalog"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// CategoriesHandler handles category CRUD operations.
type CategoriesHandler struct {
	categories catalog.CategoryService
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(c catalog.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: c}
}

// BrandsHandler handles brand CRUD operations.
type BrandsHandler struct {
	brands catalog.BrandService
}

// NewBrandsHandler creates a new BrandsHandler.
func NewBrandsHandler(b catalog.BrandService) *BrandsHandler {
	return &BrandsHandler{brands: b}
}

// --- Input/Output types ---

// IDInput addresses a category or brand.
type IDInput struct {
	ID string `path:"id"`
}

// CategoryBody is the writable part of a category.
type CategoryBody struct {
	Name string `json:"name" minLength:"1" example:"Guitarras"`
}

// CreateCategoryInput is the body of a category create.
type CreateCategoryInput struct {
	Body CategoryBody
}

// UpdateCategoryInput is the body of a category rename.
type UpdateCategoryInput struct {
	ID   string `path:"id"`
	Body CategoryBody
}

// CategoryListOutput lists categories.
type CategoryListOutput struct {
	Body struct {
		Success bool              `json:"success"`
		Data    []domain.Category `json:"data"`
	}
}

// CategoryOutput wraps a single category.
type CategoryOutput struct {
	Body struct {
		Success bool             `json:"success"`
		Data    *domain.Category `json:"data"`
	}
}

// BrandBody is the writable part of a brand. The slug is derived from the name.
type BrandBody struct {
	Name string `json:"name"           minLength:"1" example:"Tagima"`
	Logo string `json:"logo,omitempty" required:"false" example:"https://cdn.example.com/tagima.png"`
}

// CreateBrandInput is the body of a brand create.
type CreateBrandInput struct {
	Body BrandBody
}

// UpdateBrandInput is the body of a brand update.
type UpdateBrandInput struct {
	ID   string `path:"id"`
	Body BrandBody
}

// BrandListOutput lists brands.
type BrandListOutput struct {
	Body struct {
		Success bool           `json:"success"`
		Data    []domain.Brand `json:"data"`
	}
}

// BrandOutput wraps a single brand.
type BrandOutput struct {
	Body struct {
		Success bool          `json:"success"`
		Data    *domain.Brand `json:"data"`
	}
}

// --- Category handlers ---

// List returns all categories ordered by name.
func (h *CategoriesHandler) List(ctx context.Context, _ *struct{}) (*CategoryListOutput, error) {
	categories, err := h.categories.ListCategories(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	resp := &CategoryListOutput{}
	resp.Body.Success = true
	resp.Body.Data = categories
	return resp, nil
}

// Create adds a category.
func (h *CategoriesHandler) Create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	c, err := h.categories.CreateCategory(ctx, input.Body.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return categoryOutput(c), nil
}

// Update renames a category.
func (h *CategoriesHandler) Update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	c, err := h.categories.UpdateCategory(ctx, input.ID, input.Body.Name)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return categoryOutput(c), nil
}

// Delete removes a category.
func (h *CategoriesHandler) Delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	if err := h.categories.DeleteCategory(ctx, input.ID); err != nil {
		return nil, notFound(err, "category")
	}
	return nil, nil //nolint:nilnil // 204 has no body
}

func categoryOutput(c *domain.Category) *CategoryOutput {
	resp := &CategoryOutput{}
	resp.Body.Success = true
	resp.Body.Data = c
	return resp
}

// --- Brand handlers ---

// List returns all brands ordered by name.
func (h *BrandsHandler) List(ctx context.Context, _ *struct{}) (*BrandListOutput, error) {
	brands, err := h.brands.ListBrands(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if brands == nil {
		brands = []domain.Brand{}
	}

	resp := &BrandListOutput{}
	resp.Body.Success = true
	resp.Body.Data = brands
	return resp, nil
}

// Create adds a brand.
func (h *BrandsHandler) Create(ctx context.Context, input *CreateBrandInput) (*BrandOutput, error) {
	b, err := h.brands.CreateBrand(ctx, catalog.BrandInput{Name: input.Body.Name, Logo: input.Body.Logo})
	if err != nil {
		return nil, mapError(err)
	}
	return brandOutput(b), nil
}

// Update overwrites a brand.
func (h *BrandsHandler) Update(ctx context.Context, input *UpdateBrandInput) (*BrandOutput, error) {
	b, err := h.brands.UpdateBrand(ctx, input.ID, catalog.BrandInput{Name: input.Body.Name, Logo: input.Body.Logo})
	if err != nil {
		return nil, notFound(err, "brand")
	}
	return brandOutput(b), nil
}

// Delete removes a brand.
func (h *BrandsHandler) Delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	if err := h.brands.DeleteBrand(ctx, input.ID); err != nil {
		return nil, notFound(err, "brand")
	}
	return nil, nil //nolint:nilnil // 204 has no body
}

func brandOutput(b *domain.Brand) *BrandOutput {
	resp := &BrandOutput{}
	resp.Body.Success = true
	resp.Body.Data = b
	return resp
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoriesHandler) {
	UseEnvelopeErrors()

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Returns all categories ordered by name with their product counts.",
		Tags:        []string{"categories"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/api/categories",
		Summary:       "Create a category",
		Tags:          []string{"categories"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Rename a category",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/api/categories/{id}",
		Summary:       "Delete a category",
		Description:   "Products filed under the category become uncategorized.",
		Tags:          []string{"categories"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}

// RegisterBrandRoutes registers brand endpoints with the Huma API.
func RegisterBrandRoutes(api huma.API, h *BrandsHandler) {
	UseEnvelopeErrors()

	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/brands",
		Summary:     "List brands",
		Description: "Returns all brands ordered by name with their product counts.",
		Tags:        []string{"brands"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-brand",
		Method:        http.MethodPost,
		Path:          "/api/brands",
		Summary:       "Create a brand",
		Tags:          []string{"brands"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-brand",
		Method:      http.MethodPut,
		Path:        "/api/brands/{id}",
		Summary:     "Update a brand",
		Description: "Overwrites the brand and regenerates its slug from the name.",
		Tags:        []string{"brands"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-brand",
		Method:        http.MethodDelete,
		Path:          "/api/brands/{id}",
		Summary:       "Delete a brand",
		Description:   "Products of the brand become unbranded.",
		Tags:          []string{"brands"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
