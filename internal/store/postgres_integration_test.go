//go:build integration

package store_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/storefront/internal/credentials"
	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/store"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, 4)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func ptr[T any](v T) *T { return &v }

func testProduct(id string, price float64, sold int) *domain.NewProduct {
	return &domain.NewProduct{
		ID:                id,
		Title:             "Guitarra " + id,
		Price:             price,
		CurrencyID:        "BRL",
		Thumbnail:         "https://http2.mlstatic.com/" + id + "-I.jpg",
		Condition:         domain.ConditionNew,
		AvailableQuantity: 2,
		SoldQuantity:      sold,
		SellerNickname:    domain.SellerNotInformed,
		Permalink:         "https://produto.mercadolivre.com.br/" + id,
		PictureURLs: []string{
			"https://http2.mlstatic.com/" + id + "-1.jpg",
			"https://http2.mlstatic.com/" + id + "-2.jpg",
		},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_ProductLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	cat := &domain.Category{Name: "Guitarras"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	brand := &domain.Brand{Name: "Fender", Slug: "fender"}
	require.NoError(t, s.CreateBrand(ctx, brand))

	p := testProduct("MLB100", 1999.99, 5)
	p.CategoryID = &cat.ID
	p.BrandID = &brand.ID
	require.NoError(t, s.CreateProduct(ctx, p))

	t.Run("get returns joins and ordered pictures", func(t *testing.T) {
		got, err := s.GetProduct(ctx, "MLB100")
		require.NoError(t, err)
		assert.InDelta(t, 1999.99, got.Price, 0.001)
		require.NotNil(t, got.Category)
		assert.Equal(t, "Guitarras", got.Category.Name)
		require.NotNil(t, got.Brand)
		assert.Equal(t, "fender", got.Brand.Slug)
		require.Len(t, got.Pictures, 2)
		assert.Equal(t, 0, got.Pictures[0].Position)
		assert.Contains(t, got.Pictures[1].URL, "-2.jpg")
	})

	t.Run("duplicate id and permalink", func(t *testing.T) {
		err := s.CreateProduct(ctx, testProduct("MLB100", 1, 0))
		require.ErrorIs(t, err, errs.ErrAlreadyExists)

		dup := testProduct("MLB101", 1, 0)
		dup.Permalink = p.Permalink
		require.ErrorIs(t, s.CreateProduct(ctx, dup), errs.ErrAlreadyExists)

		id, found, err := s.FindProductByPermalink(ctx, p.Permalink)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "MLB100", id)

		exists, err := s.ProductExists(ctx, "MLB100")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown category is an invalid reference", func(t *testing.T) {
		bad := testProduct("MLB102", 1, 0)
		bad.CategoryID = ptr("missing")
		require.ErrorIs(t, s.CreateProduct(ctx, bad), errs.ErrInvalidReference)
	})

	t.Run("taxonomy updates report product counts", func(t *testing.T) {
		cat.Name = "Guitarras Elétricas"
		require.NoError(t, s.UpdateCategory(ctx, cat))
		assert.Equal(t, 1, cat.ProductCount)

		brand.Name = "Fender USA"
		brand.Slug = "fender-usa"
		require.NoError(t, s.UpdateBrand(ctx, brand))
		assert.Equal(t, 1, brand.ProductCount)

		require.ErrorIs(t, s.UpdateCategory(ctx, &domain.Category{ID: "00000000-0000-0000-0000-000000000000", Name: "X"}), errs.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := s.UpdateProduct(ctx, "MLB100", &domain.ProductPatch{
			Title: ptr("Fender Stratocaster"),
			Price: ptr(1799.0),
		})
		require.NoError(t, err)
		assert.Equal(t, "Fender Stratocaster", got.Title)
		assert.InDelta(t, 1799.0, got.Price, 0.001)
		assert.Equal(t, domain.SellerNotInformed, got.SellerNickname)
		require.NotNil(t, got.CategoryID)

		got, err = s.UpdateProduct(ctx, "MLB100", &domain.ProductPatch{CategoryID: ptr("")})
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.NotNil(t, got.BrandID)
	})

	t.Run("negative price violates check", func(t *testing.T) {
		_, err := s.UpdateProduct(ctx, "MLB100", &domain.ProductPatch{Price: ptr(-5.0)})
		var v *errs.ValidationError
		require.ErrorAs(t, err, &v)
	})

	t.Run("deleting brand nulls the reference", func(t *testing.T) {
		require.NoError(t, s.DeleteBrand(ctx, brand.ID))
		got, err := s.GetProduct(ctx, "MLB100")
		require.NoError(t, err)
		assert.Nil(t, got.BrandID)
		assert.Nil(t, got.Brand)
	})

	t.Run("delete cascades pictures", func(t *testing.T) {
		require.NoError(t, s.DeleteProduct(ctx, "MLB100"))
		_, err := s.GetProduct(ctx, "MLB100")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.ErrorIs(t, s.DeleteProduct(ctx, "MLB100"), errs.ErrNotFound)
	})
}

func TestPostgresStore_ListProducts_FiltersAndPages(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	guitars := &domain.Category{Name: "Guitarras"}
	require.NoError(t, s.CreateCategory(ctx, guitars))
	drums := &domain.Category{Name: "Baterias"}
	require.NoError(t, s.CreateCategory(ctx, drums))
	fender := &domain.Brand{Name: "Fender", Slug: "fender"}
	require.NoError(t, s.CreateBrand(ctx, fender))

	for i := range 15 {
		p := testProduct(fmt.Sprintf("MLB%03d", i), float64(100+i*10), i%4)
		if i%2 == 0 {
			p.CategoryID = &guitars.ID
		} else {
			p.CategoryID = &drums.ID
		}
		if i < 5 {
			p.BrandID = &fender.ID
		}
		if i == 7 {
			p.Title = "Bateria 100% acústica"
		}
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	t.Run("default page and total", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{})
		require.NoError(t, err)
		assert.Equal(t, 15, total)
		assert.Len(t, products, 12)
		// Popularity first.
		assert.Equal(t, 3, products[0].SoldQuantity)
	})

	t.Run("category set and brand", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{
			CategoryIDs: []string{guitars.ID},
			BrandIDs:    []string{fender.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total) // 0, 2, 4
		for _, p := range products {
			assert.Equal(t, guitars.ID, *p.CategoryID)
			assert.Equal(t, fender.ID, *p.BrandID)
		}
	})

	t.Run("price range inclusive and sorted", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{
			MinPrice: ptr(150.0),
			MaxPrice: ptr(200.0),
			SortBy:   store.SortPriceDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, total)
		require.Len(t, products, 6)
		assert.InDelta(t, 200.0, products[0].Price, 0.001)
		assert.InDelta(t, 150.0, products[5].Price, 0.001)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{Search: "100%"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, "MLB007", products[0].ID)

		_, total, err = s.ListProducts(ctx, &store.ProductQuery{Search: "_"})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("pages never overlap", func(t *testing.T) {
		seen := map[string]bool{}
		for page := 1; page <= 4; page++ {
			products, total, err := s.ListProducts(ctx, &store.ProductQuery{
				Page:     page,
				PageSize: 4,
				SortBy:   store.SortRelevance,
			})
			require.NoError(t, err)
			assert.Equal(t, 15, total)
			for _, p := range products {
				assert.False(t, seen[p.ID], "product %s appeared twice", p.ID)
				seen[p.ID] = true
			}
		}
		assert.Len(t, seen, 15)
	})

	t.Run("page past the end", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{Page: 50})
		require.NoError(t, err)
		assert.Equal(t, 15, total)
		assert.Empty(t, products)

		products, total, err = s.ListProducts(ctx, &store.ProductQuery{Page: math.MaxInt64})
		require.NoError(t, err)
		assert.Equal(t, 15, total)
		assert.Empty(t, products)
	})

	t.Run("unknown ids match nothing", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{CategoryIDs: []string{"nope"}})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
	})

	t.Run("category counts", func(t *testing.T) {
		cats, err := s.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 2)
		assert.Equal(t, "Baterias", cats[0].Name)
		assert.Equal(t, 7, cats[0].ProductCount)
		assert.Equal(t, 8, cats[1].ProductCount)
	})
}

func TestPostgresStore_ListProducts_CombinedFilters(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c1 := &domain.Category{Name: "C1"}
	require.NoError(t, s.CreateCategory(ctx, c1))
	c2 := &domain.Category{Name: "C2"}
	require.NoError(t, s.CreateCategory(ctx, c2))

	for i, price := range []float64{150, 200, 300, 450, 999} {
		p := testProduct(fmt.Sprintf("MLB9%02d", i), price, 0)
		p.CategoryID = &c1.ID
		require.NoError(t, s.CreateProduct(ctx, p))
	}
	// Same category and price band but not a guitar.
	drum := testProduct("MLB950", 120, 0)
	drum.Title = "Bateria Pearl"
	drum.CategoryID = &c1.ID
	require.NoError(t, s.CreateProduct(ctx, drum))
	// A guitar in range under another category.
	other := testProduct("MLB951", 180, 0)
	other.CategoryID = &c2.ID
	require.NoError(t, s.CreateProduct(ctx, other))

	t.Run("category search price range sorted and limited", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{
			CategoryIDs: []string{c1.ID},
			Search:      "guitar",
			MinPrice:    ptr(100.0),
			MaxPrice:    ptr(500.0),
			SortBy:      store.SortPriceAsc,
			PageSize:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, products, 2)
		assert.InDelta(t, 150.0, products[0].Price, 0.001)
		assert.InDelta(t, 200.0, products[1].Price, 0.001)
	})
}

func TestPostgresStore_PartnerLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	first := &domain.Partner{Name: "Luthieria Sul", ImageURL: "data:image/png;base64,iVBORw0KGgo="}
	require.NoError(t, s.CreatePartner(ctx, first))
	require.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &domain.Partner{Name: "Escola de Música", ImageURL: "data:image/jpeg;base64,/9j/4AAQ"}
	require.NoError(t, s.CreatePartner(ctx, second))

	partners, err := s.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, first.ID, partners[0].ID)
	assert.Equal(t, second.ImageURL, partners[1].ImageURL)

	require.NoError(t, s.DeletePartner(ctx, first.ID))
	require.ErrorIs(t, s.DeletePartner(ctx, first.ID), errs.ErrNotFound)

	partners, err = s.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, second.ID, partners[0].ID)
}

func TestPostgresStore_Credentials(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	creds := s.Credentials()

	_, ok, err := creds.Get(ctx, credentials.AccessToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, creds.SetPair(ctx, credentials.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, creds.SetPair(ctx, credentials.TokenPair{AccessToken: "a2", RefreshToken: "r2"}))

	v, ok, err := creds.Get(ctx, credentials.AccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a2", v)

	v, _, err = creds.Get(ctx, credentials.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "r2", v)
}
