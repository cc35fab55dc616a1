package store

import (
	"fmt"
	"math"
	"strings"
)

// Page size defaults for product listings. The catalog service enforces the
// configured maximum; the store takes PageSize as given.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Sort keys accepted by ProductQuery.SortBy.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// validSortBy maps allowed SortBy values to their ORDER BY clause. Ties are
// broken by creation time then id so pages never overlap.
var validSortBy = map[string]string{
	SortPriceAsc:  "p.price ASC, p.created_at ASC, p.id ASC",
	SortPriceDesc: "p.price DESC, p.created_at ASC, p.id ASC",
}

const defaultSortBy = "p.sold_quantity DESC, p.created_at ASC, p.id ASC"

const baseProductsSelect = `SELECT p.id, p.title, p.price, p.currency_id, p.thumbnail,
	p.condition, p.available_quantity, p.sold_quantity, p.seller_nickname, p.permalink,
	p.category_id, p.brand_id, c.name, b.name, b.slug, b.logo,
	p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
LEFT JOIN brands b ON b.id = p.brand_id`

const countProductsSelect = "SELECT COUNT(*) FROM products p"

// ProductQuery defines optional filters for the storefront product list.
// Empty ID sets and nil prices mean "no filter".
type ProductQuery struct {
	CategoryIDs []string
	BrandIDs    []string
	MinPrice    *float64
	MaxPrice    *float64
	Search      string
	SortBy      string // "relevance" (default), "price-asc", "price-desc"
	Page        int    // 1-based, default 1
	PageSize    int    // default 12
}

// Limit returns the effective page size.
func (q *ProductQuery) Limit() int {
	if q.PageSize <= 0 {
		return DefaultPageSize
	}
	return q.PageSize
}

// Offset returns the effective row offset. An offset that would overflow
// saturates at math.MaxInt64, which Postgres accepts and answers with an
// empty page.
func (q *ProductQuery) Offset() int64 {
	page := int64(max(q.Page, 1))
	limit := int64(q.Limit())
	if page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a product query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters shared by both.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	in := func(column string, values []string) {
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, v)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"%s IN (%s)", column, strings.Join(placeholders, ", "),
		))
	}

	if len(q.CategoryIDs) > 0 {
		in("p.category_id", q.CategoryIDs)
	}

	if len(q.BrandIDs) > 0 {
		in("p.brand_id", q.BrandIDs)
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", paramIdx))
		args = append(args, *q.MinPrice)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	if term := strings.TrimSpace(q.Search); term != "" {
		conditions = append(conditions, fmt.Sprintf(`p.title ILIKE $%d ESCAPE '\'`, paramIdx))
		args = append(args, "%"+escapeLike(term)+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultSortBy
	if col, ok := validSortBy[q.SortBy]; ok {
		orderClause = col
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, q.Limit(), q.Offset(),
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
