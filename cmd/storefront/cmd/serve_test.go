package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront/internal/catalog"
	"github.com/donaldgifford/storefront/internal/meli"
	meliMocks "github.com/donaldgifford/storefront/internal/meli/mocks"
	"github.com/donaldgifford/storefront/internal/store"
	storeMocks "github.com/donaldgifford/storefront/internal/store/mocks"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// newTestServer wires the real catalog service over mocked persistence and
// marketplace so requests exercise routing, middleware and error mapping.
func newTestServer(t *testing.T) (*echo.Echo, *storeMocks.MockStore, *meliMocks.MockItemFetcher) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mf := meliMocks.NewMockItemFetcher(t)
	mr := meliMocks.NewMockTokenRefresher(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := catalog.NewService(ms, mf, catalog.WithLogger(log))
	e := newServer(log, serverDeps{
		db:         ms,
		products:   svc,
		categories: svc,
		brands:     svc,
		partners:   svc,
		items:      mf,
		refresher:  mr,
	})
	return e, ms, mf
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_OperationalEndpoints(t *testing.T) {
	t.Parallel()

	e, ms, _ := newTestServer(t)
	ms.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	rec := serve(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(e, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")

	rec = serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")

	rec = serve(e, http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/products/add")
	assert.Contains(t, rec.Body.String(), "/api/refreshToken")
	assert.Contains(t, rec.Body.String(), "/api/partners/{id}")
}

func TestServer_AddProductDuplicate(t *testing.T) {
	t.Parallel()

	e, ms, _ := newTestServer(t)
	ms.EXPECT().
		FindProductByPermalink(mock.Anything, meli.ItemURL(meli.DefaultAPIURL, "MLB42")).
		Return("MLB42", true, nil).Once()

	rec := serve(e, http.MethodPost, "/api/products/add", `{"productId":"MLB42"}`)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(),
		`"success":false,"error":"product MLB42 is already registered","productId":"MLB42"`)
}

func TestServer_AddProductMissingID(t *testing.T) {
	t.Parallel()

	e, _, _ := newTestServer(t)

	rec := serve(e, http.MethodPost, "/api/products/add", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestServer_ListProducts(t *testing.T) {
	t.Parallel()

	e, ms, _ := newTestServer(t)
	ms.EXPECT().ListProducts(mock.Anything, mock.Anything).
		Return([]domain.Product{{ID: "MLB1", Title: "Contrabaixo"}}, 1, nil).Once()

	rec := serve(e, http.MethodGet, "/api/products?categoryIds=c1&sortBy=price-asc", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), `"title":"Contrabaixo"`)

	rec = serve(e, http.MethodGet, "/api/products?minPrice=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "minPrice: must be a number")
}

func TestServer_ListProductsHugePage(t *testing.T) {
	t.Parallel()

	e, ms, _ := newTestServer(t)
	ms.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
		return q.Page == math.MaxInt64 && q.PageSize == store.DefaultPageSize && q.Offset() == math.MaxInt64
	})).Return([]domain.Product{}, 31, nil).Once()

	rec := serve(e, http.MethodGet, "/api/products?page=9223372036854775807", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"products":[],"total":31`)
}

func TestServer_CreatePartner(t *testing.T) {
	t.Parallel()

	e, ms, _ := newTestServer(t)
	ms.EXPECT().CreatePartner(mock.Anything, mock.MatchedBy(func(p *domain.Partner) bool {
		return p.Name == "Luthieria Sul" && p.ImageURL == "data:image/gif;base64,R0lGODlh"
	})).RunAndReturn(func(_ context.Context, p *domain.Partner) error {
		p.ID = "p1"
		return nil
	}).Once()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Luthieria Sul"))
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="logo.gif"`)
	h.Set("Content-Type", "image/gif")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("GIF89a"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/partners", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"imageUrl":"data:image/gif;base64,R0lGODlh"`)
}
