package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/donaldgifford/storefront/internal/errs"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// MaxPartnerImageBytes bounds an uploaded partner image. The image is stored
// inline, so it is kept small.
const MaxPartnerImageBytes = 2 << 20

const defaultPartnerImageType = "image/jpeg"

// PartnerInput is an uploaded partner logo. ContentType is the part's
// declared media type and may be empty.
type PartnerInput struct {
	Name        string
	ContentType string
	Image       []byte
}

// ListPartners returns all partners in creation order.
func (s *Service) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.store.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing partners: %w", err)
	}
	return partners, nil
}

// CreatePartner stores a partner with its image encoded as a data URL.
func (s *Service) CreatePartner(ctx context.Context, in PartnerInput) (*domain.Partner, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errs.Invalid("name", "is required")
	}
	if len(in.Image) == 0 {
		return nil, errs.Invalid("image", "is required")
	}
	if len(in.Image) > MaxPartnerImageBytes {
		return nil, errs.Invalid("image", fmt.Sprintf("must be at most %d bytes", MaxPartnerImageBytes))
	}

	mediaType, err := partnerImageType(in.ContentType)
	if err != nil {
		return nil, err
	}

	p := &domain.Partner{
		Name:     name,
		ImageURL: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(in.Image),
	}
	if err := s.store.CreatePartner(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("partner created", "partner_id", p.ID, "name", p.Name, "image_bytes", len(in.Image))
	return p, nil
}

// DeletePartner removes a partner.
func (s *Service) DeletePartner(ctx context.Context, id string) error {
	if err := s.store.DeletePartner(ctx, id); err != nil {
		return err
	}
	s.log.Info("partner deleted", "partner_id", id)
	return nil
}

// partnerImageType returns the media type recorded in the data URL. A missing
// or generic type falls back to image/jpeg.
func partnerImageType(contentType string) (string, error) {
	if strings.TrimSpace(contentType) == "" {
		return defaultPartnerImageType, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errs.Invalid("image", "has a malformed content type")
	}
	switch {
	case mediaType == "application/octet-stream":
		return defaultPartnerImageType, nil
	case strings.HasPrefix(mediaType, "image/"):
		return mediaType, nil
	default:
		return "", errs.Invalid("image", "must be an image, got "+mediaType)
	}
}
