package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront/internal/errs"
	"github.com/donaldgifford/storefront/internal/meli"
	"github.com/donaldgifford/storefront/internal/metrics"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// Ingestion results recorded on metrics.IngestionsTotal.
const (
	resultCreated   = "created"
	resultDuplicate = "duplicate"
	resultFailed    = "failed"
)

// AddProductInput identifies the marketplace item to ingest and where to file it.
// Empty CategoryID or BrandID leave the product unclassified.
type AddProductInput struct {
	ProductID  string
	CategoryID string
	BrandID    string
}

// AddProduct copies a marketplace item into the local catalog and returns
// its id. A product already registered under the same permalink or id
// fails with *errs.DuplicateError. The product and its pictures are
// written in one transaction, so a failure leaves nothing behind.
func (s *Service) AddProduct(ctx context.Context, in AddProductInput) (string, error) {
	start := time.Now()
	result := resultFailed
	defer func() {
		metrics.IngestionsTotal.WithLabelValues(result).Inc()
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	id := strings.TrimSpace(in.ProductID)
	if id == "" {
		return "", errs.Invalid("productId", "is required")
	}

	ctx, span := s.tracer.Start(ctx, "catalog.add_product",
		trace.WithAttributes(attribute.String("meli.item_id", id)))
	defer span.End()

	created, err := s.addProduct(ctx, id, in)
	if err != nil {
		var dup *errs.DuplicateError
		if errors.As(err, &dup) {
			result = resultDuplicate
			s.log.Info("product already registered", "product_id", id, "existing_id", dup.ExistingID)
			span.SetAttributes(attribute.String("catalog.existing_id", dup.ExistingID))
			return "", err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Error("product ingestion failed", "product_id", id, "error", err)
		return "", err
	}

	result = resultCreated
	s.log.Info("product ingested", "product_id", created)
	return created, nil
}

func (s *Service) addProduct(ctx context.Context, id string, in AddProductInput) (string, error) {
	existing, found, err := s.store.FindProductByPermalink(ctx, meli.ItemURL(meli.DefaultAPIURL, id))
	if err != nil {
		return "", fmt.Errorf("checking permalink: %w", err)
	}
	if found {
		return "", &errs.DuplicateError{ExistingID: existing}
	}

	item, err := s.items.Item(ctx, id)
	if err != nil {
		return "", err
	}
	if item.ID == "" {
		item.ID = id
	}

	exists, err := s.store.ProductExists(ctx, item.ID)
	if err != nil {
		return "", fmt.Errorf("checking product id: %w", err)
	}
	if exists {
		return "", &errs.DuplicateError{ExistingID: item.ID}
	}

	if err := s.store.CreateProduct(ctx, newProductFromItem(item, in)); err != nil {
		return "", s.createError(ctx, item, err)
	}
	return item.ID, nil
}

// createError translates a failed insert. A unique violation here means a
// concurrent ingestion won the race.
func (s *Service) createError(ctx context.Context, item *meli.Item, err error) error {
	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		existing := item.ID
		if item.Permalink != "" {
			if other, found, lookupErr := s.store.FindProductByPermalink(ctx, item.Permalink); lookupErr == nil && found {
				existing = other
			}
		}
		return &errs.DuplicateError{ExistingID: existing}
	case errors.Is(err, errs.ErrInvalidReference):
		return errs.Invalid("categoryId/brandId", "refers to an unknown category or brand")
	default:
		return fmt.Errorf("saving product: %w", err)
	}
}

func newProductFromItem(item *meli.Item, in AddProductInput) *domain.NewProduct {
	seller := item.SellerNickname()
	if seller == "" {
		seller = domain.SellerNotInformed
	}

	return &domain.NewProduct{
		ID:                item.ID,
		Title:             item.Title,
		Price:             item.Price,
		CurrencyID:        item.CurrencyID,
		Thumbnail:         item.Thumbnail,
		Condition:         domain.NormalizeCondition(item.Condition),
		AvailableQuantity: max(item.AvailableQuantity, 0),
		SoldQuantity:      item.SoldQuantity,
		SellerNickname:    seller,
		Permalink:         item.Permalink,
		CategoryID:        optional(in.CategoryID),
		BrandID:           optional(in.BrandID),
		PictureURLs:       item.PictureURLs(),
	}
}

// optional maps a blank id onto NULL.
func optional(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}
