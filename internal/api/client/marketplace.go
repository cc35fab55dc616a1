package client

import (
	"context"
	"encoding/json"
	"net/url"
)

// TokenRefresh is the rotated token pair reported by POST /api/refreshToken.
type TokenRefresh struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// RefreshToken asks the server to rotate the marketplace token pair.
func (c *Client) RefreshToken(ctx context.Context) (*TokenRefresh, error) {
	var out TokenRefresh
	if err := c.post(ctx, "/api/refreshToken", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketplaceItem fetches a raw marketplace item through the server.
func (c *Client) MarketplaceItem(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getData(ctx, "/api/marketplace/items/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}
