package handlers_test

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront/internal/api/handlers"
	"github.com/donaldgifford/storefront/internal/catalog"
	catalogMocks "github.com/donaldgifford/storefront/internal/catalog/mocks"
	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/store"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

func newProductsAPI(t *testing.T, setup func(*catalogMocks.MockProductService)) humatest.TestAPI {
	t.Helper()

	ms := catalogMocks.NewMockProductService(t)
	setup(ms)

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(ms))
	return api
}

func TestProductsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*catalogMocks.MockProductService)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "no filters",
			path: "/api/products",
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().
					ListProducts(mock.Anything, &store.ProductQuery{}).
					Return([]domain.Product{{ID: "MLB1", Title: "Violão"}}, 31, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"success":true`, `"total":31`, `"Violão"`},
		},
		{
			name: "all filters",
			path: "/api/products?categoryIds=c1,%20c2,&brandIds=b1&minPrice=10.5&maxPrice=99" +
				"&search=strat&sortBy=price-desc&page=3&limit=6",
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
						return assert.ObjectsAreEqual([]string{"c1", "c2"}, q.CategoryIDs) &&
							assert.ObjectsAreEqual([]string{"b1"}, q.BrandIDs) &&
							q.MinPrice != nil && *q.MinPrice == 10.5 &&
							q.MaxPrice != nil && *q.MaxPrice == 99 &&
							q.Search == "strat" &&
							q.SortBy == store.SortPriceDesc &&
							q.Page == 3 && q.PageSize == 6
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"products":[]`, `"total":0`},
		},
		{
			name: "huge page is an empty page",
			path: "/api/products?page=9223372036854775807",
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
						return q.Page == math.MaxInt64 && q.Offset() >= 0
					})).
					Return([]domain.Product{}, 31, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"success":true`, `"products":[]`, `"total":31`},
		},
		{
			name:       "bad min price",
			path:       "/api/products?minPrice=cheap",
			setupMock:  func(_ *catalogMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"success":false`, `minPrice: must be a number`},
		},
		{
			name:       "bad page",
			path:       "/api/products?page=two",
			setupMock:  func(_ *catalogMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"success":false`},
		},
		{
			name: "store error",
			path: "/api/products",
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().ListProducts(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("listing products: db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"success":false`, `db down`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newProductsAPI(t, tt.setupMock)
			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestProductsHandler_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*catalogMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: map[string]any{"productId": "MLB123", "categoryId": "c1"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().
					AddProduct(mock.Anything, catalog.AddProductInput{ProductID: "MLB123", CategoryID: "c1"}).
					Return("MLB123", nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"productId":"MLB123"`,
		},
		{
			name: "duplicate carries existing id",
			body: map[string]any{"productId": "MLB123"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", &errs.DuplicateError{ExistingID: "MLB123"}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"error":"product MLB123 is already registered","productId":"MLB123"`,
		},
		{
			name:       "missing product id",
			body:       map[string]any{"categoryId": "c1"},
			setupMock:  func(_ *catalogMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `productId`,
		},
		{
			name:       "invalid JSON",
			body:       strings.NewReader(`{invalid}`),
			setupMock:  func(_ *catalogMocks.MockProductService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"success":false`,
		},
		{
			name: "validation error from service",
			body: map[string]any{"productId": " "},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", errs.Invalid("productId", "is required")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `productId: is required`,
		},
		{
			name: "missing credentials",
			body: map[string]any{"productId": "MLB123"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", &errs.ConfigurationError{Setting: "marketplace.access_token"}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `marketplace.access_token`,
		},
		{
			name: "marketplace rejected credentials",
			body: map[string]any{"productId": "MLB123"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", &errs.UpstreamAuthError{Status: 401, Message: "invalid token"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `invalid token`,
		},
		{
			name: "marketplace item missing",
			body: map[string]any{"productId": "MLB000"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", &errs.UpstreamError{Status: 404, Body: "not_found"}).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found on the marketplace`,
		},
		{
			name: "marketplace down",
			body: map[string]any{"productId": "MLB123"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().AddProduct(mock.Anything, mock.Anything).
					Return("", &errs.UpstreamError{Err: errors.New("dial tcp: timeout")}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `marketplace unreachable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newProductsAPI(t, tt.setupMock)
			resp := api.Post("/api/products/add", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestProductsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "found", wantStatus: http.StatusOK, wantBody: `"attributes":[{"id":"MODEL"`},
		{name: "missing locally", err: errs.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: `product not found`},
		{
			name:       "marketplace failure",
			err:        &errs.UpstreamError{Status: 500, Body: "oops"},
			wantStatus: http.StatusBadGateway,
			wantBody:   `marketplace API error: 500`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newProductsAPI(t, func(m *catalogMocks.MockProductService) {
				var d *domain.ProductDetail
				if tt.err == nil {
					d = &domain.ProductDetail{
						Product:    domain.Product{ID: "MLB123", Pictures: []domain.Picture{}},
						Attributes: []domain.Attribute{{ID: "MODEL", Name: "Modelo", ValueName: "Strat"}},
					}
				}
				m.EXPECT().GetProductDetail(mock.Anything, "MLB123").Return(d, tt.err).Once()
			})

			resp := api.Get("/api/products/MLB123")
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestProductsHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*catalogMocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "updated",
			body: map[string]any{"title": "New", "price": 10},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().
					UpdateProduct(mock.Anything, "MLB123", mock.MatchedBy(func(f map[string]any) bool {
						return f["title"] == "New" && f["price"] == float64(10)
					})).
					Return(&domain.Product{ID: "MLB123", Title: "New", Price: 10}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"title":"New"`,
		},
		{
			name: "nothing to update",
			body: map[string]any{"foo": "bar"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().UpdateProduct(mock.Anything, "MLB123", mock.Anything).
					Return(nil, errs.Invalid("", "no valid fields provided for update")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `no valid fields provided for update`,
		},
		{
			name: "permalink collision",
			body: map[string]any{"permalink": "https://taken"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().UpdateProduct(mock.Anything, "MLB123", mock.Anything).
					Return(nil, fmt.Errorf("updating product: %w: products_permalink_key", errs.ErrAlreadyExists)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `products_permalink_key`,
		},
		{
			name: "missing product",
			body: map[string]any{"title": "x"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().UpdateProduct(mock.Anything, "MLB123", mock.Anything).
					Return(nil, errs.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `product not found`,
		},
		{
			name: "unknown brand",
			body: map[string]any{"brandId": "nope"},
			setupMock: func(m *catalogMocks.MockProductService) {
				m.EXPECT().UpdateProduct(mock.Anything, "MLB123", mock.Anything).
					Return(nil, fmt.Errorf("updating product: %w: products_brand_id_fkey", errs.ErrInvalidReference)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid reference`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newProductsAPI(t, tt.setupMock)
			resp := api.Put("/api/products/MLB123", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestProductsHandler_Delete(t *testing.T) {
	t.Parallel()

	api := newProductsAPI(t, func(m *catalogMocks.MockProductService) {
		m.EXPECT().DeleteProduct(mock.Anything, "MLB123").Return(nil).Once()
		m.EXPECT().DeleteProduct(mock.Anything, "MLB404").Return(errs.ErrNotFound).Once()
	})

	resp := api.Delete("/api/products/MLB123")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"message":"product deleted"`)

	resp = api.Delete("/api/products/MLB404")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false,"error":"product not found"`)
}
