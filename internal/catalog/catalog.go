// Package catalog implements the storefront's product workflows on top of the
// store and the marketplace client: ingestion of marketplace items, catalog
// listing, live product detail, category and brand administration, and
// partner logos.
package catalog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/store"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/storefront/internal/catalog"

// ProductService covers ingestion and product administration.
type ProductService interface {
	AddProduct(ctx context.Context, in AddProductInput) (string, error)
	ListProducts(ctx context.Context, q *store.ProductQuery) ([]domain.Product, int, error)
	GetProductDetail(ctx context.Context, id string) (*domain.ProductDetail, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CategoryService covers category administration.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// BrandService covers brand administration.
type BrandService interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, in BrandInput) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id string, in BrandInput) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

// PartnerService covers the storefront's partner logos.
type PartnerService interface {
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	CreatePartner(ctx context.Context, in PartnerInput) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id string) error
}

var (
	_ ProductService  = (*Service)(nil)
	_ CategoryService = (*Service)(nil)
	_ BrandService    = (*Service)(nil)
	_ PartnerService  = (*Service)(nil)
)

// Service implements ProductService, CategoryService, BrandService and
// PartnerService.
type Service struct {
	store store.Store
	items meli.ItemFetcher

	defaultPageSize int
	maxPageSize     int

	log    *slog.Logger
	tracer trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(instrumentationName)
	}
}

// WithPageSizes sets the page size used when a query has none and the
// largest page size a caller may request. Non-positive values keep the
// defaults.
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(s *Service) {
		if defaultSize > 0 {
			s.defaultPageSize = defaultSize
		}
		if maxSize > 0 {
			s.maxPageSize = maxSize
		}
	}
}

// NewService creates a catalog Service.
func NewService(s store.Store, items meli.ItemFetcher, opts ...Option) *Service {
	svc := &Service{
		store:           s,
		items:           items,
		defaultPageSize: store.DefaultPageSize,
		maxPageSize:     store.MaxPageSize,
		log:             slog.Default(),
		tracer:          otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.defaultPageSize > svc.maxPageSize {
		svc.defaultPageSize = svc.maxPageSize
	}
	return svc
}
