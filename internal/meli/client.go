// Package meli provides a MercadoLibre API client abstracted behind interfaces
// for testability: OAuth token refresh and single-item lookup.
package meli

import (
	"context"

	"github.com/donaldgifford/storefront/internal/credentials"
)

const (
	// DefaultAPIURL is the MercadoLibre REST API base.
	DefaultAPIURL = "https://api.mercadolibre.com"

	// DefaultTokenURL is the MercadoLibre OAuth token endpoint.
	DefaultTokenURL = "https://api.mercadolibre.com/oauth/token" //nolint:gosec // not a credential

	instrumentationName = "github.com/donaldgifford/storefront/internal/meli"
)

// ItemFetcher fetches a single marketplace item by ID.
type ItemFetcher interface {
	Item(ctx context.Context, id string) (*Item, error)
}

// TokenRefresher exchanges the stored refresh token for a new token pair.
type TokenRefresher interface {
	// Refresh always calls the token endpoint.
	Refresh(ctx context.Context) (*credentials.TokenPair, error)

	// RefreshIfStale calls the token endpoint only if the stored access token
	// still equals staleAccess. Otherwise it returns the stored pair, which
	// another caller has already rotated.
	RefreshIfStale(ctx context.Context, staleAccess string) (*credentials.TokenPair, error)
}

// ItemURL returns the API URL of an item. It is also the permalink shape the
// storefront checks for duplicates before ingesting.
func ItemURL(apiURL, id string) string {
	return apiURL + "/items/" + id
}
