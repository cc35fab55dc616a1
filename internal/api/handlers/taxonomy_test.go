package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront/internal/api/handlers"
	"github.com/donaldgifford/storefront/internal/catalog"
	catalogMocks "github.com/donaldgifford/storefront/internal/catalog/mocks"
	"github.com/donaldgifford/storefront/internal/errs"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

func newCategoriesAPI(t *testing.T, setup func(*catalogMocks.MockCategoryService)) humatest.TestAPI {
	t.Helper()

	mc := catalogMocks.NewMockCategoryService(t)
	setup(mc)

	_, api := humatest.New(t)
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(mc))
	return api
}

func newBrandsAPI(t *testing.T, setup func(*catalogMocks.MockBrandService)) humatest.TestAPI {
	t.Helper()

	mb := catalogMocks.NewMockBrandService(t)
	setup(mb)

	_, api := humatest.New(t)
	handlers.RegisterBrandRoutes(api, handlers.NewBrandsHandler(mb))
	return api
}

func TestCategoriesHandler(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(m *catalogMocks.MockCategoryService) {
			m.EXPECT().ListCategories(mock.Anything).
				Return([]domain.Category{{ID: "c1", Name: "Baterias", ProductCount: 4}}, nil).Once()
		})

		resp := api.Get("/api/categories")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"productCount":4`)
	})

	t.Run("list empty is an array", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(m *catalogMocks.MockCategoryService) {
			m.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Once()
		})

		resp := api.Get("/api/categories")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"data":[]`)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(m *catalogMocks.MockCategoryService) {
			m.EXPECT().CreateCategory(mock.Anything, "Violões").
				Return(&domain.Category{ID: "c9", Name: "Violões"}, nil).Once()
		})

		resp := api.Post("/api/categories", map[string]any{"name": "Violões"})
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"id":"c9"`)
	})

	t.Run("create without name", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(_ *catalogMocks.MockCategoryService) {})

		resp := api.Post("/api/categories", map[string]any{})
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), `"success":false`)
	})

	t.Run("rename missing", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(m *catalogMocks.MockCategoryService) {
			m.EXPECT().UpdateCategory(mock.Anything, "c404", "X").Return(nil, errs.ErrNotFound).Once()
		})

		resp := api.Put("/api/categories/c404", map[string]any{"name": "X"})
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), `category not found`)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		api := newCategoriesAPI(t, func(m *catalogMocks.MockCategoryService) {
			m.EXPECT().DeleteCategory(mock.Anything, "c1").Return(nil).Once()
			m.EXPECT().DeleteCategory(mock.Anything, "c2").Return(errors.New("db down")).Once()
		})

		resp := api.Delete("/api/categories/c1")
		require.Equal(t, http.StatusNoContent, resp.Code)
		assert.Empty(t, resp.Body.String())

		resp = api.Delete("/api/categories/c2")
		require.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestBrandsHandler(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		logo := "https://cdn/tagima.png"
		api := newBrandsAPI(t, func(m *catalogMocks.MockBrandService) {
			m.EXPECT().CreateBrand(mock.Anything, catalog.BrandInput{Name: "Tagima", Logo: logo}).
				Return(&domain.Brand{ID: "b1", Name: "Tagima", Slug: "tagima", Logo: &logo}, nil).Once()
		})

		resp := api.Post("/api/brands", map[string]any{"name": "Tagima", "logo": logo})
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"slug":"tagima"`)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		t.Parallel()
		api := newBrandsAPI(t, func(m *catalogMocks.MockBrandService) {
			m.EXPECT().CreateBrand(mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("creating brand: %w: brands_slug_key", errs.ErrAlreadyExists)).Once()
		})

		resp := api.Post("/api/brands", map[string]any{"name": "Fender"})
		require.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), `brands_slug_key`)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()
		api := newBrandsAPI(t, func(m *catalogMocks.MockBrandService) {
			m.EXPECT().UpdateBrand(mock.Anything, "b1", catalog.BrandInput{Name: "Giannini"}).
				Return(&domain.Brand{ID: "b1", Name: "Giannini", Slug: "giannini"}, nil).Once()
		})

		resp := api.Put("/api/brands/b1", map[string]any{"name": "Giannini"})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"slug":"giannini"`)
	})

	t.Run("list and delete missing", func(t *testing.T) {
		t.Parallel()
		api := newBrandsAPI(t, func(m *catalogMocks.MockBrandService) {
			m.EXPECT().ListBrands(mock.Anything).Return([]domain.Brand{{ID: "b1", Slug: "fender"}}, nil).Once()
			m.EXPECT().DeleteBrand(mock.Anything, "b404").Return(errs.ErrNotFound).Once()
		})

		resp := api.Get("/api/brands")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"slug":"fender"`)

		resp = api.Delete("/api/brands/b404")
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), `brand not found`)
	})
}
