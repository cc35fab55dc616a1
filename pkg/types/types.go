// Package domain defines the core business types for the storefront catalog.
package domain

import (
	"slices"
	"time"
)

// Condition is the marketplace condition of an item.
type Condition string

// Condition constants.
const (
	ConditionNew          Condition = "new"
	ConditionUsed         Condition = "used"
	ConditionNotSpecified Condition = "not_specified"
)

var validConditions = []Condition{ConditionNew, ConditionUsed, ConditionNotSpecified}

// IsValid reports whether c is one of the known conditions.
func (c Condition) IsValid() bool {
	return slices.Contains(validConditions, c)
}

// NormalizeCondition maps a raw marketplace condition onto the known set.
// Anything unrecognized becomes not_specified.
func NormalizeCondition(raw string) Condition {
	c := Condition(raw)
	if c.IsValid() {
		return c
	}
	return ConditionNotSpecified
}

// SellerNotInformed is stored when the marketplace item has no seller nickname.
const SellerNotInformed = "not informed"

// Product is a local copy of a marketplace item. ID is the marketplace item ID.
type Product struct {
	ID                string    `json:"id"                 db:"id"`
	Title             string    `json:"title"              db:"title"`
	Price             float64   `json:"price"              db:"price"`
	CurrencyID        string    `json:"currency_id"        db:"currency_id"`
	Thumbnail         string    `json:"thumbnail"          db:"thumbnail"`
	Condition         Condition `json:"condition"          db:"condition"`
	AvailableQuantity int       `json:"available_quantity" db:"available_quantity"`
	SoldQuantity      int       `json:"sold_quantity"      db:"sold_quantity"`
	SellerNickname    string    `json:"seller_nickname"    db:"seller_nickname"`
	Permalink         string    `json:"permalink"          db:"permalink"`

	CategoryID *string   `json:"categoryId"         db:"category_id"`
	BrandID    *string   `json:"brandId"            db:"brand_id"`
	Category   *Category `json:"category,omitempty"`
	Brand      *Brand    `json:"brand,omitempty"`
	Pictures   []Picture `json:"pictures"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Picture is one image of a product. Position preserves marketplace order.
type Picture struct {
	ID       int64  `json:"id"       db:"id"`
	URL      string `json:"url"      db:"url"`
	Position int    `json:"position" db:"position"`
}

// Category groups products for storefront navigation.
type Category struct {
	ID           string `json:"id"                     db:"id"`
	Name         string `json:"name"                   db:"name"`
	ProductCount int    `json:"productCount,omitempty" db:"product_count"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID           string  `json:"id"                     db:"id"`
	Name         string  `json:"name"                   db:"name"`
	Slug         string  `json:"slug"                   db:"slug"`
	Logo         *string `json:"logo,omitempty"         db:"logo"`
	ProductCount int     `json:"productCount,omitempty" db:"product_count"`
}

// Partner is a partner logo shown on the storefront. ImageURL is a data URL
// holding the uploaded image.
type Partner struct {
	ID        string    `json:"id"        db:"id"`
	Name      string    `json:"name"      db:"name"`
	ImageURL  string    `json:"imageUrl"  db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewProduct holds the fields written when a product is first ingested.
type NewProduct struct {
	ID                string
	Title             string
	Price             float64
	CurrencyID        string
	Thumbnail         string
	Condition         Condition
	AvailableQuantity int
	SoldQuantity      int
	SellerNickname    string
	Permalink         string
	CategoryID        *string
	BrandID           *string
	PictureURLs       []string
}

// ProductPatch is an allow-listed partial update. Nil fields are left untouched.
type ProductPatch struct {
	Title             *string
	Price             *float64
	CurrencyID        *string
	Thumbnail         *string
	Condition         *Condition
	AvailableQuantity *int
	SellerNickname    *string
	Permalink         *string
	CategoryID        *string
	BrandID           *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Price == nil && p.CurrencyID == nil &&
		p.Thumbnail == nil && p.Condition == nil && p.AvailableQuantity == nil &&
		p.SellerNickname == nil && p.Permalink == nil &&
		p.CategoryID == nil && p.BrandID == nil
}

// Attribute is a marketplace item attribute such as brand or model.
type Attribute struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ValueName string `json:"value_name"`
}

// ProductDetail is a local product overlaid with live marketplace data.
type ProductDetail struct {
	Product
	Attributes []Attribute `json:"attributes"`
}
