// Package store defines the datastore abstraction for storefront.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
//
// Lookups of a missing row return errs.ErrNotFound. Unique and foreign key
// violations surface as errs.ErrAlreadyExists and errs.ErrInvalidReference.
package store

import (
	"context"

	domain "github.com/donaldgifford/storefront/pkg/types"
)

// Store defines all data access operations for storefront.
type Store interface {
	// Products
	ListProducts(ctx context.Context, q *ProductQuery) ([]domain.Product, int, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	FindProductByPermalink(ctx context.Context, permalink string) (id string, found bool, err error)
	ProductExists(ctx context.Context, id string) (bool, error)
	CreateProduct(ctx context.Context, p *domain.NewProduct) error
	UpdateProduct(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Categories
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error

	// Brands
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, b *domain.Brand) error
	UpdateBrand(ctx context.Context, b *domain.Brand) error
	DeleteBrand(ctx context.Context, id string) error

	// Partners
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	CreatePartner(ctx context.Context, p *domain.Partner) error
	DeletePartner(ctx context.Context, id string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
