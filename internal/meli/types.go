package meli

import (
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// Item represents a MercadoLibre item as returned by GET /items/{id}.
type Item struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Price             float64            `json:"price"`
	CurrencyID        string             `json:"currency_id"`
	Thumbnail         string             `json:"thumbnail"`
	Pictures          []ItemPicture      `json:"pictures"`
	Condition         string             `json:"condition"`
	AvailableQuantity int                `json:"available_quantity"`
	SoldQuantity      int                `json:"sold_quantity"`
	Attributes        []domain.Attribute `json:"attributes"`
	Seller            *ItemSeller        `json:"seller,omitempty"`
	SellerID          int64              `json:"seller_id,omitempty"`
	Permalink         string             `json:"permalink"`
}

// ItemPicture is one image of an item.
type ItemPicture struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// ItemSeller is the seller block. The items endpoint only fills it for
// some sites and API versions.
type ItemSeller struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// PictureURLs returns one URL per picture in marketplace order. The plain
// url field is stored as sent; secure_url only fills in when url is empty.
func (i *Item) PictureURLs() []string {
	urls := make([]string, len(i.Pictures))
	for n, p := range i.Pictures {
		urls[n] = p.URL
		if urls[n] == "" {
			urls[n] = p.SecureURL
		}
	}
	return urls
}

// SellerNickname returns the seller nickname, or "" when the payload has none.
func (i *Item) SellerNickname() string {
	if i.Seller == nil {
		return ""
	}
	return i.Seller.Nickname
}
