package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/storefront/internal/errs"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

const defaultPoolSize = 10

// PostgreSQL error codes mapped onto the errs sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Pool is the subset of *pgxpool.Pool used by PostgresStore. It is also
// implemented by pgxmock.PgxPoolIface.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A non-positive poolSize uses the default of 10.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStoreFromPool wraps an existing pool.
func NewPostgresStoreFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListProducts returns one page of products matching q and the total number
// of matches. The page and the count run concurrently.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	q *ProductQuery,
) ([]domain.Product, int, error) {
	if q == nil {
		q = &ProductQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var (
		products []domain.Product
		total    int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.pool.QueryRow(gctx, countSQL, args...).Scan(&total); err != nil {
			return fmt.Errorf("counting products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.pool.Query(gctx, dataSQL, args...)
		if err != nil {
			return fmt.Errorf("querying products: %w", err)
		}
		defer rows.Close()

		page := make([]domain.Product, 0, min(q.Limit(), DefaultPageSize))
		for rows.Next() {
			var p domain.Product
			if err := scanProduct(rows, &p); err != nil {
				return fmt.Errorf("scanning product: %w", err)
			}
			page = append(page, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating products: %w", err)
		}
		products = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := s.attachPictures(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProduct retrieves a product with its category, brand and pictures.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("getting product: %w", err)
	}

	products := []domain.Product{*p}
	if err := s.attachPictures(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// FindProductByPermalink returns the id of the product with the given permalink.
func (s *PostgresStore) FindProductByPermalink(
	ctx context.Context,
	permalink string,
) (string, bool, error) {
	var id string
	err := s.pool.QueryRow(ctx, queryFindProductByPermalink, permalink).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("finding product by permalink: %w", err)
	}
	return id, true, nil
}

// ProductExists reports whether a product with the given id exists.
func (s *PostgresStore) ProductExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryProductExists, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking product: %w", err)
	}
	return exists, nil
}

// CreateProduct inserts a product and its ordered pictures in one transaction.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.NewProduct) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	args := pgx.NamedArgs{
		"id":                 p.ID,
		"title":              p.Title,
		"price":              p.Price,
		"currency_id":        p.CurrencyID,
		"thumbnail":          p.Thumbnail,
		"condition":          string(p.Condition),
		"available_quantity": p.AvailableQuantity,
		"sold_quantity":      p.SoldQuantity,
		"seller_nickname":    p.SellerNickname,
		"permalink":          p.Permalink,
		"category_id":        p.CategoryID,
		"brand_id":           p.BrandID,
	}

	if _, err := tx.Exec(ctx, queryInsertProduct, args); err != nil {
		return fmt.Errorf("inserting product: %w", mapPgError(err))
	}

	for i, url := range p.PictureURLs {
		if _, err := tx.Exec(ctx, queryInsertPicture, p.ID, url, i); err != nil {
			return fmt.Errorf("inserting picture %d: %w", i, mapPgError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing product: %w", mapPgError(err))
	}
	return nil
}

// UpdateProduct applies a partial update and returns the updated product.
// A non-nil empty CategoryID or BrandID clears the reference.
func (s *PostgresStore) UpdateProduct(
	ctx context.Context,
	id string,
	patch *domain.ProductPatch,
) (*domain.Product, error) {
	var condition *string
	if patch.Condition != nil {
		c := string(*patch.Condition)
		condition = &c
	}

	args := pgx.NamedArgs{
		"id":                 id,
		"title":              patch.Title,
		"price":              patch.Price,
		"currency_id":        patch.CurrencyID,
		"thumbnail":          patch.Thumbnail,
		"condition":          condition,
		"available_quantity": patch.AvailableQuantity,
		"seller_nickname":    patch.SellerNickname,
		"permalink":          patch.Permalink,
		"set_category":       patch.CategoryID != nil,
		"category_id":        deref(patch.CategoryID),
		"set_brand":          patch.BrandID != nil,
		"brand_id":           deref(patch.BrandID),
	}

	tag, err := s.pool.Exec(ctx, queryUpdateProduct, args)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return nil, errs.ErrNotFound
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product. Its pictures cascade.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, "deleting product", queryDeleteProduct, id)
}

// ListCategories returns all categories ordered by name with product counts.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, queryListCategories)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category and sets its generated ID.
func (s *PostgresStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	if err := s.pool.QueryRow(ctx, queryCreateCategory, c.Name).Scan(&c.ID); err != nil {
		return fmt.Errorf("creating category: %w", mapPgError(err))
	}
	return nil
}

// UpdateCategory renames a category and refreshes its product count.
func (s *PostgresStore) UpdateCategory(ctx context.Context, c *domain.Category) error {
	err := s.pool.QueryRow(ctx, queryUpdateCategory, c.ID, c.Name).Scan(&c.ProductCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating category: %w", mapPgError(err))
	}
	return nil
}

// DeleteCategory removes a category. Products referencing it become uncategorized.
func (s *PostgresStore) DeleteCategory(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, "deleting category", queryDeleteCategory, id)
}

// ListBrands returns all brands ordered by name with product counts.
func (s *PostgresStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx, queryListBrands)
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Logo, &b.ProductCount); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// CreateBrand inserts a brand and sets its generated ID.
func (s *PostgresStore) CreateBrand(ctx context.Context, b *domain.Brand) error {
	args := pgx.NamedArgs{
		"name": b.Name,
		"slug": b.Slug,
		"logo": b.Logo,
	}
	if err := s.pool.QueryRow(ctx, queryCreateBrand, args).Scan(&b.ID); err != nil {
		return fmt.Errorf("creating brand: %w", mapPgError(err))
	}
	return nil
}

// UpdateBrand overwrites a brand's name, slug and logo and refreshes its
// product count.
func (s *PostgresStore) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	args := pgx.NamedArgs{
		"id":   b.ID,
		"name": b.Name,
		"slug": b.Slug,
		"logo": b.Logo,
	}
	err := s.pool.QueryRow(ctx, queryUpdateBrand, args).Scan(&b.ProductCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating brand: %w", mapPgError(err))
	}
	return nil
}

// DeleteBrand removes a brand. Products referencing it become unbranded.
func (s *PostgresStore) DeleteBrand(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, "deleting brand", queryDeleteBrand, id)
}

// ListPartners returns all partners in creation order.
func (s *PostgresStore) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	rows, err := s.pool.Query(ctx, queryListPartners)
	if err != nil {
		return nil, fmt.Errorf("querying partners: %w", err)
	}
	defer rows.Close()

	partners := []domain.Partner{}
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning partner: %w", err)
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// CreatePartner inserts a partner and sets its generated ID and creation time.
func (s *PostgresStore) CreatePartner(ctx context.Context, p *domain.Partner) error {
	if err := s.pool.QueryRow(ctx, queryCreatePartner, p.Name, p.ImageURL).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("creating partner: %w", mapPgError(err))
	}
	return nil
}

// DeletePartner removes a partner.
func (s *PostgresStore) DeletePartner(ctx context.Context, id string) error {
	return s.execAffectingOne(ctx, "deleting partner", queryDeletePartner, id)
}

// execAffectingOne runs a write and reports errs.ErrNotFound when no row matched.
func (s *PostgresStore) execAffectingOne(ctx context.Context, op, sql string, args ...any) error {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// attachPictures loads the pictures of all given products in one query.
func (s *PostgresStore) attachPictures(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	index := make(map[string]int, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = i
		products[i].Pictures = []domain.Picture{}
	}

	rows, err := s.pool.Query(ctx, queryListPicturesForProducts, ids)
	if err != nil {
		return fmt.Errorf("querying pictures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID string
			pic       domain.Picture
		)
		if err := rows.Scan(&productID, &pic.ID, &pic.URL, &pic.Position); err != nil {
			return fmt.Errorf("scanning picture: %w", err)
		}
		if i, ok := index[productID]; ok {
			products[i].Pictures = append(products[i].Pictures, pic)
		}
	}
	return rows.Err()
}

// scanProduct scans one row produced by baseProductsSelect.
func scanProduct(row pgx.Row, p *domain.Product) error {
	var (
		condition                     string
		categoryName, brandName, slug *string
		brandLogo                     *string
	)

	if err := row.Scan(
		&p.ID, &p.Title, &p.Price, &p.CurrencyID, &p.Thumbnail,
		&condition, &p.AvailableQuantity, &p.SoldQuantity, &p.SellerNickname, &p.Permalink,
		&p.CategoryID, &p.BrandID, &categoryName, &brandName, &slug, &brandLogo,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}

	p.Condition = domain.Condition(condition)
	if p.CategoryID != nil && categoryName != nil {
		p.Category = &domain.Category{ID: *p.CategoryID, Name: *categoryName}
	}
	if p.BrandID != nil && brandName != nil {
		p.Brand = &domain.Brand{ID: *p.BrandID, Name: *brandName, Slug: deref(slug), Logo: brandLogo}
	}
	return nil
}

// mapPgError translates constraint violations into errs sentinels, keeping
// the constraint name for context.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", errs.ErrAlreadyExists, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", errs.ErrInvalidReference, pgErr.ConstraintName)
	case pgCheckViolation:
		return &errs.ValidationError{Message: "value violates " + pgErr.ConstraintName}
	default:
		return err
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
