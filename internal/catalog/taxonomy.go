package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/pkg/slug"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// BrandInput is the writable part of a brand. The slug is always derived
// from Name.
type BrandInput struct {
	Name string
	Logo string
}

// ListCategories returns all categories with their product counts.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	c := &domain.Category{Name: strings.TrimSpace(name)}
	if c.Name == "" {
		return nil, errs.Invalid("name", "is required")
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("category created", "category_id", c.ID, "name", c.Name)
	return c, nil
}

// UpdateCategory renames a category. The returned category carries its
// current product count.
func (s *Service) UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	c := &domain.Category{ID: id, Name: strings.TrimSpace(name)}
	if c.Name == "" {
		return nil, errs.Invalid("name", "is required")
	}
	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category. Its products become uncategorized.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", "category_id", id)
	return nil
}

// ListBrands returns all brands with their product counts.
func (s *Service) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.store.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	return brands, nil
}

// CreateBrand adds a brand. Two brands whose names reduce to the same slug
// conflict with errs.ErrAlreadyExists.
func (s *Service) CreateBrand(ctx context.Context, in BrandInput) (*domain.Brand, error) {
	b, err := brandFromInput("", in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("brand created", "brand_id", b.ID, "slug", b.Slug)
	return b, nil
}

// UpdateBrand overwrites a brand and regenerates its slug. The returned brand
// carries its current product count.
func (s *Service) UpdateBrand(ctx context.Context, id string, in BrandInput) (*domain.Brand, error) {
	b, err := brandFromInput(id, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBrand removes a brand. Its products become unbranded.
func (s *Service) DeleteBrand(ctx context.Context, id string) error {
	if err := s.store.DeleteBrand(ctx, id); err != nil {
		return err
	}
	s.log.Info("brand deleted", "brand_id", id)
	return nil
}

func brandFromInput(id string, in BrandInput) (*domain.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errs.Invalid("name", "is required")
	}
	s := slug.Make(name)
	if s == "" {
		return nil, errs.Invalid("name", "must contain at least one letter or digit")
	}
	return &domain.Brand{
		ID:   id,
		Name: name,
		Slug: s,
		Logo: optional(in.Logo),
	}, nil
}
