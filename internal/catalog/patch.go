package catalog

import (
	"math"

	"github.com/donaldgifford/storefront/internal/errs"
	domain "github.com/donaldgifford/storefront/pkg/types"
)

// patchFields lists the JSON keys a product update may touch.
var patchFields = map[string]func(*domain.ProductPatch, any) error{
	"title":              setString(func(p *domain.ProductPatch, v *string) { p.Title = v }, "title"),
	"currency_id":        setString(func(p *domain.ProductPatch, v *string) { p.CurrencyID = v }, "currency_id"),
	"thumbnail":          setString(func(p *domain.ProductPatch, v *string) { p.Thumbnail = v }, "thumbnail"),
	"seller_nickname":    setString(func(p *domain.ProductPatch, v *string) { p.SellerNickname = v }, "seller_nickname"),
	"permalink":          setString(func(p *domain.ProductPatch, v *string) { p.Permalink = v }, "permalink"),
	"categoryId":         setString(func(p *domain.ProductPatch, v *string) { p.CategoryID = v }, "categoryId"),
	"brandId":            setString(func(p *domain.ProductPatch, v *string) { p.BrandID = v }, "brandId"),
	"price":              setPrice,
	"available_quantity": setQuantity,
	"condition":          setCondition,
}

// ParsePatch builds a ProductPatch from a decoded JSON object. Keys outside
// the allow-list and null values are dropped. A patch that changes nothing
// is rejected.
func ParsePatch(fields map[string]any) (*domain.ProductPatch, error) {
	patch := &domain.ProductPatch{}
	for key, value := range fields {
		set, ok := patchFields[key]
		if !ok || value == nil {
			continue
		}
		if err := set(patch, value); err != nil {
			return nil, err
		}
	}
	if patch.IsEmpty() {
		return nil, errs.Invalid("", "no valid fields provided for update")
	}
	return patch, nil
}

func setString(assign func(*domain.ProductPatch, *string), field string) func(*domain.ProductPatch, any) error {
	return func(p *domain.ProductPatch, v any) error {
		s, ok := v.(string)
		if !ok {
			return errs.Invalid(field, "must be a string")
		}
		assign(p, &s)
		return nil
	}
}

func setPrice(p *domain.ProductPatch, v any) error {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.Invalid("price", "must be a number")
	}
	if f < 0 {
		return errs.Invalid("price", "must not be negative")
	}
	p.Price = &f
	return nil
}

func setQuantity(p *domain.ProductPatch, v any) error {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 {
		return errs.Invalid("available_quantity", "must be an integer")
	}
	if f < 0 {
		return errs.Invalid("available_quantity", "must not be negative")
	}
	n := int(f)
	p.AvailableQuantity = &n
	return nil
}

func setCondition(p *domain.ProductPatch, v any) error {
	s, ok := v.(string)
	c := domain.Condition(s)
	if !ok || !c.IsValid() {
		return errs.Invalid("condition", "must be one of new, used, not_specified")
	}
	p.Condition = &c
	return nil
}
