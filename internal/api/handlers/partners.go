package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront/internal/catalog"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// partnerUploadBytes leaves room for the form envelope around the image.
const partnerUploadBytes = catalog.MaxPartnerImageBytes + 64<<10

// PartnersHandler handles partner logo uploads.
type PartnersHandler struct {
	partners catalog.PartnerService
}

// NewPartnersHandler creates a new PartnersHandler.
func NewPartnersHandler(p catalog.PartnerService) *PartnersHandler {
	return &PartnersHandler{partners: p}
}

// CreatePartnerInput is a multipart form with a "name" field and an
// "image" file part.
type CreatePartnerInput struct {
	RawBody multipart.Form
}

// PartnerListOutput lists partners.
type PartnerListOutput struct {
	Body struct {
		Success bool             `json:"success"`
		Data    []domain.Partner `json:"data"`
	}
}

// PartnerOutput wraps a single partner.
type PartnerOutput struct {
	Body struct {
		Success bool            `json:"success"`
		Data    *domain.Partner `json:"data"`
	}
}

// List returns all partners in creation order.
func (h *PartnersHandler) List(ctx context.Context, _ *struct{}) (*PartnerListOutput, error) {
	partners, err := h.partners.ListPartners(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if partners == nil {
		partners = []domain.Partner{}
	}

	resp := &PartnerListOutput{}
	resp.Body.Success = true
	resp.Body.Data = partners
	return resp, nil
}

// Create stores an uploaded partner logo.
func (h *PartnersHandler) Create(ctx context.Context, input *CreatePartnerInput) (*PartnerOutput, error) {
	in, err := partnerInputFromForm(&input.RawBody)
	if err != nil {
		return nil, mapError(err)
	}

	p, err := h.partners.CreatePartner(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &PartnerOutput{}
	resp.Body.Success = true
	resp.Body.Data = p
	return resp, nil
}

// Delete removes a partner.
func (h *PartnersHandler) Delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	if err := h.partners.DeletePartner(ctx, input.ID); err != nil {
		return nil, notFound(err, "partner")
	}
	return nil, nil //nolint:nilnil // 204 has no body
}

// partnerInputFromForm reads the name field and the first image part. A
// missing part leaves Image empty for the service to reject.
func partnerInputFromForm(form *multipart.Form) (catalog.PartnerInput, error) {
	var in catalog.PartnerInput
	if names := form.Value["name"]; len(names) > 0 {
		in.Name = strings.TrimSpace(names[0])
	}

	files := form.File["image"]
	if len(files) == 0 {
		return in, nil
	}

	fh := files[0]
	in.ContentType = fh.Header.Get("Content-Type")

	f, err := fh.Open()
	if err != nil {
		return in, fmt.Errorf("opening image part: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	// One byte past the limit lets the service report the size.
	in.Image, err = io.ReadAll(io.LimitReader(f, catalog.MaxPartnerImageBytes+1))
	if err != nil {
		return in, fmt.Errorf("reading image part: %w", err)
	}
	return in, nil
}

// RegisterPartnerRoutes registers partner endpoints with the Huma API.
func RegisterPartnerRoutes(api huma.API, h *PartnersHandler) {
	UseEnvelopeErrors()

	huma.Register(api, huma.Operation{
		OperationID: "list-partners",
		Method:      http.MethodGet,
		Path:        "/api/partners",
		Summary:     "List partners",
		Description: "Returns all partners in creation order. Images are data URLs.",
		Tags:        []string{"partners"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-partner",
		Method:        http.MethodPost,
		Path:          "/api/partners",
		Summary:       "Upload a partner logo",
		Description:   "Accepts multipart/form-data with a name field and an image file. The image is stored inline as a data URL.",
		Tags:          []string{"partners"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  partnerUploadBytes,
		Errors:        []int{http.StatusBadRequest},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-partner",
		Method:        http.MethodDelete,
		Path:          "/api/partners/{id}",
		Summary:       "Delete a partner",
		Tags:          []string{"partners"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
