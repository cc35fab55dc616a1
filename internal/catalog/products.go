package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/metrics"
	"github.com/donaldgifford/storefront/internal/store"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// ListProducts returns one page of the catalog and the number of matching
// products. A missing page size uses the configured default and oversized
// ones are capped.
func (s *Service) ListProducts(
	ctx context.Context,
	q *store.ProductQuery,
) ([]domain.Product, int, error) {
	start := time.Now()
	defer func() {
		metrics.CatalogQueryDuration.Observe(time.Since(start).Seconds())
	}()

	normalized := store.ProductQuery{}
	if q != nil {
		normalized = *q
	}
	if normalized.PageSize <= 0 {
		normalized.PageSize = s.defaultPageSize
	}
	normalized.PageSize = min(normalized.PageSize, s.maxPageSize)
	normalized.Page = max(normalized.Page, 1)

	products, total, err := s.store.ListProducts(ctx, &normalized)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	return products, total, nil
}

// GetProductDetail returns the local product overlaid with the live
// marketplace item. The local permalink wins over the marketplace one and
// the marketplace seller nickname wins over the stored one. Marketplace
// failures are returned unchanged.
func (s *Service) GetProductDetail(ctx context.Context, id string) (*domain.ProductDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.Invalid("id", "is required")
	}

	ctx, span := s.tracer.Start(ctx, "catalog.product_detail",
		trace.WithAttributes(attribute.String("meli.item_id", id)))
	defer span.End()

	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Item(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("product detail sync failed", "product_id", id, "error", err)
		return nil, err
	}

	return mergeDetail(product, item), nil
}

func mergeDetail(p *domain.Product, item *meli.Item) *domain.ProductDetail {
	d := &domain.ProductDetail{
		Product:    *p,
		Attributes: item.Attributes,
	}
	if d.Attributes == nil {
		d.Attributes = []domain.Attribute{}
	}

	if item.Title != "" {
		d.Title = item.Title
	}
	d.Price = item.Price
	if item.CurrencyID != "" {
		d.CurrencyID = item.CurrencyID
	}
	if item.Thumbnail != "" {
		d.Thumbnail = item.Thumbnail
	}
	if item.Condition != "" {
		d.Condition = domain.NormalizeCondition(item.Condition)
	}
	d.AvailableQuantity = max(item.AvailableQuantity, 0)
	d.SoldQuantity = item.SoldQuantity

	if d.Permalink == "" {
		d.Permalink = item.Permalink
	}
	if nick := item.SellerNickname(); nick != "" {
		d.SellerNickname = nick
	}

	if urls := item.PictureURLs(); len(urls) > 0 {
		d.Pictures = make([]domain.Picture, len(urls))
		for i, u := range urls {
			d.Pictures[i] = domain.Picture{URL: u, Position: i}
		}
	}
	return d
}

// UpdateProduct applies an allow-listed partial update decoded from a JSON
// object. Unknown keys and null values are ignored.
func (s *Service) UpdateProduct(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*domain.Product, error) {
	patch, err := ParsePatch(fields)
	if err != nil {
		return nil, err
	}

	p, err := s.store.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info("product updated", "product_id", id)
	return p, nil
}

// DeleteProduct removes a product and its pictures.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", "product_id", id)
	return nil
}
