package store

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront/internal/credentials"
	"github.com/donaldgifford/storefront/internal/errs"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

var productColumns = []string{
	"id", "title", "price", "currency_id", "thumbnail",
	"condition", "available_quantity", "sold_quantity", "seller_nickname", "permalink",
	"category_id", "brand_id", "category_name", "brand_name", "brand_slug", "brand_logo",
	"created_at", "updated_at",
}

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStoreFromPool(mock), mock
}

func addProductRow(rows *pgxmock.Rows, id string, price float64, categoryID, brandID *string) *pgxmock.Rows {
	var categoryName, brandName, brandSlug *string
	if categoryID != nil {
		categoryName = ptr("Guitarras")
	}
	if brandID != nil {
		brandName = ptr("Fender")
		brandSlug = ptr("fender")
	}
	return rows.AddRow(
		id, "Guitarra "+id, price, "BRL", "https://img/"+id+".jpg",
		"new", 3, 10, "MUSIC_STORE", "https://produto.mercadolivre.com.br/"+id,
		categoryID, brandID, categoryName, brandName, brandSlug, (*string)(nil),
		fixedTime, fixedTime,
	)
}

func TestPostgresStore_ListProducts(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.MatchExpectationsInOrder(false)

	q := &ProductQuery{CategoryIDs: []string{"cat-1"}, SortBy: SortPriceAsc}
	dataSQL, countSQL, args := q.ToSQL()

	mock.ExpectQuery(countSQL).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	rows := pgxmock.NewRows(productColumns)
	addProductRow(rows, "MLB1", 100, ptr("cat-1"), ptr("brand-1"))
	addProductRow(rows, "MLB2", 200, ptr("cat-1"), nil)
	mock.ExpectQuery(dataSQL).
		WithArgs(args...).
		WillReturnRows(rows)

	mock.ExpectQuery(queryListPicturesForProducts).
		WithArgs([]string{"MLB1", "MLB2"}).
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "id", "url", "position"}).
			AddRow("MLB1", int64(11), "https://img/1a.jpg", 0).
			AddRow("MLB1", int64(12), "https://img/1b.jpg", 1).
			AddRow("MLB2", int64(21), "https://img/2a.jpg", 0))

	products, total, err := s.ListProducts(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, products, 2)

	assert.Equal(t, "MLB1", products[0].ID)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Guitarras", products[0].Category.Name)
	require.NotNil(t, products[0].Brand)
	assert.Equal(t, "fender", products[0].Brand.Slug)
	require.Len(t, products[0].Pictures, 2)
	assert.Equal(t, "https://img/1a.jpg", products[0].Pictures[0].URL)
	assert.Equal(t, 1, products[0].Pictures[1].Position)

	assert.Nil(t, products[1].Brand)
	assert.Len(t, products[1].Pictures, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListProducts_Empty(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.MatchExpectationsInOrder(false)

	q := &ProductQuery{Page: 9}
	dataSQL, countSQL, _ := q.ToSQL()

	mock.ExpectQuery(countSQL).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(dataSQL).
		WillReturnRows(pgxmock.NewRows(productColumns))

	products, total, err := s.ListProducts(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 3, total, "page past the end still reports the real total")
	assert.NotNil(t, products)
	assert.Empty(t, products)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListProducts_HugePage(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.MatchExpectationsInOrder(false)

	q := &ProductQuery{Page: math.MaxInt64 / 10, PageSize: 12}
	dataSQL, countSQL, _ := q.ToSQL()
	assert.Contains(t, dataSQL, "OFFSET 9223372036854775807")

	mock.ExpectQuery(countSQL).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(dataSQL).
		WillReturnRows(pgxmock.NewRows(productColumns))

	products, total, err := s.ListProducts(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, products)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListProducts_CountError(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.MatchExpectationsInOrder(false)

	q := &ProductQuery{}
	dataSQL, countSQL, _ := q.ToSQL()

	mock.ExpectQuery(countSQL).WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(dataSQL).WillReturnRows(pgxmock.NewRows(productColumns))

	products, total, err := s.ListProducts(context.Background(), q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting products")
	assert.Nil(t, products)
	assert.Zero(t, total)
}

func TestPostgresStore_GetProduct(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		rows := pgxmock.NewRows(productColumns)
		addProductRow(rows, "MLB1", 150.5, nil, nil)
		mock.ExpectQuery(queryGetProduct).WithArgs("MLB1").WillReturnRows(rows)
		mock.ExpectQuery(queryListPicturesForProducts).
			WithArgs([]string{"MLB1"}).
			WillReturnRows(pgxmock.NewRows([]string{"product_id", "id", "url", "position"}))

		p, err := s.GetProduct(context.Background(), "MLB1")
		require.NoError(t, err)
		assert.Equal(t, "MLB1", p.ID)
		assert.Equal(t, domain.ConditionNew, p.Condition)
		assert.Nil(t, p.Category)
		assert.NotNil(t, p.Pictures)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryGetProduct).WithArgs("MLB404").WillReturnError(pgx.ErrNoRows)

		_, err := s.GetProduct(context.Background(), "MLB404")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestPostgresStore_FindProductByPermalink(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(queryFindProductByPermalink).
		WithArgs("https://api.mercadolibre.com/items/MLB1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("MLB1"))
	mock.ExpectQuery(queryFindProductByPermalink).
		WithArgs("https://api.mercadolibre.com/items/MLB2").
		WillReturnError(pgx.ErrNoRows)

	id, found, err := s.FindProductByPermalink(context.Background(), "https://api.mercadolibre.com/items/MLB1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MLB1", id)

	_, found, err = s.FindProductByPermalink(context.Background(), "https://api.mercadolibre.com/items/MLB2")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateProduct(t *testing.T) {
	t.Parallel()

	newProduct := func() *domain.NewProduct {
		return &domain.NewProduct{
			ID:             "MLB1",
			Title:          "Guitarra",
			Price:          99.9,
			CurrencyID:     "BRL",
			Condition:      domain.ConditionNew,
			SellerNickname: domain.SellerNotInformed,
			Permalink:      "https://produto.mercadolivre.com.br/MLB-1",
			PictureURLs:    []string{"https://img/a.jpg", "https://img/b.jpg"},
		}
	}

	t.Run("inserts product and ordered pictures", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(queryInsertProduct).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(queryInsertPicture).
			WithArgs("MLB1", "https://img/a.jpg", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(queryInsertPicture).
			WithArgs("MLB1", "https://img/b.jpg", 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, s.CreateProduct(context.Background(), newProduct()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation rolls back", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(queryInsertProduct).WillReturnError(&pgconn.PgError{
			Code:           pgUniqueViolation,
			ConstraintName: "products_permalink_key",
		})
		mock.ExpectRollback()

		err := s.CreateProduct(context.Background(), newProduct())
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
		assert.Contains(t, err.Error(), "products_permalink_key")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(queryInsertProduct).WillReturnError(&pgconn.PgError{
			Code:           pgForeignKeyViolation,
			ConstraintName: "products_category_id_fkey",
		})
		mock.ExpectRollback()

		p := newProduct()
		p.CategoryID = ptr("nope")
		err := s.CreateProduct(context.Background(), p)
		require.ErrorIs(t, err, errs.ErrInvalidReference)
	})
}

func TestPostgresStore_UpdateProduct_Missing(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec(queryUpdateProduct).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := s.UpdateProduct(context.Background(), "MLB404", &domain.ProductPatch{Title: ptr("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateProduct_CheckViolation(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec(queryUpdateProduct).WillReturnError(&pgconn.PgError{
		Code:           pgCheckViolation,
		ConstraintName: "products_price_check",
	})

	_, err := s.UpdateProduct(context.Background(), "MLB1", &domain.ProductPatch{Price: ptr(-1.0)})

	var v *errs.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestPostgresStore_Deletes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sql      string
		del      func(s *PostgresStore) error
		affected int64
		wantErr  error
	}{
		{
			name:     "product deleted",
			sql:      queryDeleteProduct,
			del:      func(s *PostgresStore) error { return s.DeleteProduct(context.Background(), "x") },
			affected: 1,
		},
		{
			name:    "product missing",
			sql:     queryDeleteProduct,
			del:     func(s *PostgresStore) error { return s.DeleteProduct(context.Background(), "x") },
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "category deleted",
			sql:      queryDeleteCategory,
			del:      func(s *PostgresStore) error { return s.DeleteCategory(context.Background(), "x") },
			affected: 1,
		},
		{
			name:    "category missing",
			sql:     queryDeleteCategory,
			del:     func(s *PostgresStore) error { return s.DeleteCategory(context.Background(), "x") },
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "brand deleted",
			sql:      queryDeleteBrand,
			del:      func(s *PostgresStore) error { return s.DeleteBrand(context.Background(), "x") },
			affected: 1,
		},
		{
			name:    "brand missing",
			sql:     queryDeleteBrand,
			del:     func(s *PostgresStore) error { return s.DeleteBrand(context.Background(), "x") },
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "partner deleted",
			sql:      queryDeletePartner,
			del:      func(s *PostgresStore) error { return s.DeletePartner(context.Background(), "x") },
			affected: 1,
		},
		{
			name:    "partner missing",
			sql:     queryDeletePartner,
			del:     func(s *PostgresStore) error { return s.DeletePartner(context.Background(), "x") },
			wantErr: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			mock.ExpectExec(tt.sql).
				WithArgs("x").
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := tt.del(s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_ListCategories(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(queryListCategories).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "count"}).
			AddRow("c1", "Baterias", 0).
			AddRow("c2", "Guitarras", 4))

	cats, err := s.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: "c1", Name: "Baterias", ProductCount: 0},
		{ID: "c2", Name: "Guitarras", ProductCount: 4},
	}, cats)
}

func TestPostgresStore_UpdateCategory(t *testing.T) {
	t.Parallel()

	t.Run("returns product count", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryUpdateCategory).
			WithArgs("c2", "Guitarras Elétricas").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

		c := &domain.Category{ID: "c2", Name: "Guitarras Elétricas"}
		require.NoError(t, s.UpdateCategory(context.Background(), c))
		assert.Equal(t, 4, c.ProductCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryUpdateCategory).
			WithArgs("nope", "X").
			WillReturnError(pgx.ErrNoRows)

		err := s.UpdateCategory(context.Background(), &domain.Category{ID: "nope", Name: "X"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("query error wrapped", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryUpdateCategory).
			WithArgs("c1", "Guitarras").
			WillReturnError(errors.New("connection reset"))

		err := s.UpdateCategory(context.Background(), &domain.Category{ID: "c1", Name: "Guitarras"})
		require.ErrorContains(t, err, "updating category: connection reset")
	})
}

func TestPostgresStore_UpdateBrand(t *testing.T) {
	t.Parallel()

	t.Run("returns product count", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryUpdateBrand).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

		b := &domain.Brand{ID: "b1", Name: "Gibson", Slug: "gibson"}
		require.NoError(t, s.UpdateBrand(context.Background(), b))
		assert.Equal(t, 7, b.ProductCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryUpdateBrand).WillReturnError(pgx.ErrNoRows)

		err := s.UpdateBrand(context.Background(), &domain.Brand{ID: "nope", Name: "X", Slug: "x"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestPostgresStore_CreateBrand_DuplicateSlug(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(queryCreateBrand).WillReturnError(&pgconn.PgError{
		Code:           pgUniqueViolation,
		ConstraintName: "brands_slug_key",
	})

	err := s.CreateBrand(context.Background(), &domain.Brand{Name: "Fender", Slug: "fender"})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestPostgresStore_Partners(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryListPartners).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "image_url", "created_at"}).
				AddRow("p1", "Luthieria Sul", "data:image/png;base64,iVBORw0K", created))

		partners, err := s.ListPartners(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Partner{{
			ID:        "p1",
			Name:      "Luthieria Sul",
			ImageURL:  "data:image/png;base64,iVBORw0K",
			CreatedAt: created,
		}}, partners)
	})

	t.Run("list empty is not nil", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryListPartners).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "image_url", "created_at"}))

		partners, err := s.ListPartners(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, partners)
		assert.Empty(t, partners)
	})

	t.Run("create sets id and time", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryCreatePartner).
			WithArgs("Luthieria Sul", "data:image/png;base64,AA==").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("p9", created))

		p := &domain.Partner{Name: "Luthieria Sul", ImageURL: "data:image/png;base64,AA=="}
		require.NoError(t, s.CreatePartner(context.Background(), p))
		assert.Equal(t, "p9", p.ID)
		assert.Equal(t, created, p.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create error wrapped", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryCreatePartner).WillReturnError(errors.New("disk full"))

		err := s.CreatePartner(context.Background(), &domain.Partner{Name: "X", ImageURL: "data:,"})
		require.ErrorContains(t, err, "creating partner: disk full")
	})
}

func TestSettingsStore(t *testing.T) {
	t.Parallel()

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryGetSetting).
			WithArgs("MERCADOLIBRE_ACCESS_TOKEN").
			WillReturnError(pgx.ErrNoRows)

		_, ok, err := s.Credentials().Get(context.Background(), credentials.AccessToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get present", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectQuery(queryGetSetting).
			WithArgs("MERCADOLIBRE_REFRESH_TOKEN").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("TG-1"))

		v, ok, err := s.Credentials().Get(context.Background(), credentials.RefreshToken)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "TG-1", v)
	})

	t.Run("set pair in one transaction", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(queryUpsertSetting).
			WithArgs("MERCADOLIBRE_ACCESS_TOKEN", "APP_USR-2").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(queryUpsertSetting).
			WithArgs("MERCADOLIBRE_REFRESH_TOKEN", "TG-2").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := s.Credentials().SetPair(context.Background(), credentials.TokenPair{
			AccessToken:  "APP_USR-2",
			RefreshToken: "TG-2",
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed second write rolls back", func(t *testing.T) {
		t.Parallel()

		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(queryUpsertSetting).
			WithArgs("MERCADOLIBRE_ACCESS_TOKEN", "APP_USR-2").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(queryUpsertSetting).
			WithArgs("MERCADOLIBRE_REFRESH_TOKEN", "TG-2").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := s.Credentials().SetPair(context.Background(), credentials.TokenPair{
			AccessToken:  "APP_USR-2",
			RefreshToken: "TG-2",
		})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM schema_migrations WHERE version = \$1\)`).
		WithArgs("001_initial_schema.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM schema_migrations WHERE version = \$1\)`).
		WithArgs("002_partners.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, RunMigrations(context.Background(), mock))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_AppliesPending(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("001_initial_schema.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS system_settings`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).
		WithArgs("001_initial_schema.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("002_partners.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS partners`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).
		WithArgs("002_partners.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, RunMigrations(context.Background(), mock))
	require.NoError(t, mock.ExpectationsWereMet())
}
