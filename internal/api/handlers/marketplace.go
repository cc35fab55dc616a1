package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront/internal/meli"
)

// MarketplaceHandler exposes the marketplace client for previews and token
// maintenance.
type MarketplaceHandler struct {
	items     meli.ItemFetcher
	refresher meli.TokenRefresher
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(items meli.ItemFetcher, refresher meli.TokenRefresher) *MarketplaceHandler {
	return &MarketplaceHandler{items: items, refresher: refresher}
}

// ItemIDInput addresses a marketplace item.
type ItemIDInput struct {
	ID string `path:"id" doc:"Marketplace item ID" example:"MLB3846027829"`
}

// ItemOutput is the raw marketplace item.
type ItemOutput struct {
	Body struct {
		Success bool       `json:"success"`
		Data    *meli.Item `json:"data"`
	}
}

// RefreshTokenOutput reports a rotated token pair.
type RefreshTokenOutput struct {
	Body struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    int    `json:"expiresIn"`
		TokenType    string `json:"tokenType"`
	}
}

// GetItem fetches an item straight from the marketplace without storing it.
func (h *MarketplaceHandler) GetItem(ctx context.Context, input *ItemIDInput) (*ItemOutput, error) {
	item, err := h.items.Item(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &ItemOutput{}
	resp.Body.Success = true
	resp.Body.Data = item
	return resp, nil
}

// RefreshToken exchanges the stored refresh token for a new pair.
func (h *MarketplaceHandler) RefreshToken(ctx context.Context, _ *struct{}) (*RefreshTokenOutput, error) {
	pair, err := h.refresher.Refresh(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &RefreshTokenOutput{}
	resp.Body.Success = true
	resp.Body.Message = "token refreshed"
	resp.Body.AccessToken = pair.AccessToken
	resp.Body.RefreshToken = pair.RefreshToken
	resp.Body.ExpiresIn = pair.ExpiresIn
	resp.Body.TokenType = pair.TokenType
	return resp, nil
}

// RegisterMarketplaceRoutes registers the marketplace preview and token endpoints.
func RegisterMarketplaceRoutes(api huma.API, h *MarketplaceHandler) {
	UseEnvelopeErrors()

	huma.Register(api, huma.Operation{
		OperationID: "get-marketplace-item",
		Method:      http.MethodGet,
		Path:        "/api/marketplace/items/{id}",
		Summary:     "Preview a marketplace item",
		Description: "Fetches an item from MercadoLibre without storing it.",
		Tags:        []string{"marketplace"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/api/refreshToken",
		Summary:     "Refresh the marketplace token",
		Description: "Exchanges the stored refresh token for a new access/refresh pair and persists it.",
		Tags:        []string{"marketplace"},
		Errors:      []int{http.StatusInternalServerError, http.StatusBadGateway},
	}, h.RefreshToken)
}
