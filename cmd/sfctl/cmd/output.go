package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/storefront/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tSTOCK\tSOLD\tCATEGORY\tBRAND\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			p.ID,
			truncate(p.Title, 40),
			formatPrice(p.Price, p.CurrencyID),
			p.AvailableQuantity,
			p.SoldQuantity,
			categoryName(p.Category),
			brandName(p.Brand),
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, d *domain.ProductDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Price:\t%s\n", formatPrice(d.Price, d.CurrencyID))
	tw.writef("Condition:\t%s\n", d.Condition)
	tw.writef("Stock:\t%d available, %d sold\n", d.AvailableQuantity, d.SoldQuantity)
	tw.writef("Seller:\t%s\n", d.SellerNickname)
	tw.writef("Category:\t%s\n", categoryName(d.Category))
	tw.writef("Brand:\t%s\n", brandName(d.Brand))
	tw.writef("Pictures:\t%d\n", len(d.Pictures))
	tw.writef("URL:\t%s\n", d.Permalink)
	for _, a := range d.Attributes {
		tw.writef("  %s:\t%s\n", a.Name, a.ValueName)
	}
	return tw.finish()
}

func printCategoryTable(w io.Writer, categories []domain.Category) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tPRODUCTS\n")
	for _, c := range categories {
		tw.writef("%s\t%s\t%d\n", c.ID, c.Name, c.ProductCount)
	}
	return tw.finish()
}

func printBrandTable(w io.Writer, brands []domain.Brand) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tSLUG\tPRODUCTS\n")
	for _, b := range brands {
		tw.writef("%s\t%s\t%s\t%d\n", b.ID, b.Name, b.Slug, b.ProductCount)
	}
	return tw.finish()
}

func printPartnerTable(w io.Writer, partners []domain.Partner) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tIMAGE\tCREATED\n")
	for _, p := range partners {
		tw.writef("%s\t%s\t%s\t%s\n", p.ID, p.Name, imageSummary(p.ImageURL), p.CreatedAt.Format("2006-01-02"))
	}
	return tw.finish()
}

// imageSummary shortens a data URL to its media type and encoded length.
func imageSummary(dataURL string) string {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return "-"
	}
	mediaType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	return fmt.Sprintf("%s (%d chars)", mediaType, len(payload))
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPrice(price float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", price, currency))
}

func categoryName(c *domain.Category) string {
	if c == nil {
		return "-"
	}
	return c.Name
}

func brandName(b *domain.Brand) string {
	if b == nil {
		return "-"
	}
	return b.Name
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
