package store

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByKey     = "key"
	orderByPrice   = "price"
	orderByUpdated = "last_updated"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByKey:     "key ASC",
	orderByPrice:   "price ASC",
	orderByUpdated: "last_updated DESC",
}

const defaultOrderBy = "key ASC"

const basePricesSelect = `SELECT key, brand, model, price, currency, source,
	COALESCE(category, ''), last_updated
FROM prices`

const countPricesSelect = "SELECT COUNT(*) FROM prices"

// ToSQL builds the data and count queries for a price listing along with
// their positional parameters.
func (q *PriceQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if s := strings.TrimSpace(q.Search); s != "" {
		conditions = append(conditions, fmt.Sprintf("(brand ILIKE $%d OR model ILIKE $%d)", paramIdx, paramIdx))
		args = append(args, "%"+s+"%")
		paramIdx++
	}

	if q.Brand != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(brand) = LOWER($%d)", paramIdx))
		args = append(args, *q.Brand)
		paramIdx++
	}

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(category) = LOWER($%d)", paramIdx))
		args = append(args, *q.Category)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		basePricesSelect, whereClause, q.orderClause(), q.limit(), q.offset(),
	)
	countSQL = countPricesSelect + whereClause

	return dataSQL, countSQL, args
}

// Matches reports whether rec passes the query filters.
func (q *PriceQuery) Matches(rec *domain.PriceRecord) bool {
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(rec.Brand), s) && !strings.Contains(strings.ToLower(rec.Model), s) {
			return false
		}
	}
	if q.Brand != nil && !strings.EqualFold(rec.Brand, *q.Brand) {
		return false
	}
	if q.Category != nil && !strings.EqualFold(rec.Category, *q.Category) {
		return false
	}
	return true
}

// Apply filters, sorts and pages records in memory with the same semantics
// as ToSQL. It returns the page and the total number of matches.
func (q *PriceQuery) Apply(records []domain.PriceRecord) ([]domain.PriceRecord, int) {
	matched := make([]domain.PriceRecord, 0, len(records))
	for i := range records {
		if q.Matches(&records[i]) {
			matched = append(matched, records[i])
		}
	}

	switch q.OrderBy {
	case orderByPrice:
		slices.SortStableFunc(matched, func(a, b domain.PriceRecord) int {
			return cmp.Or(cmp.Compare(a.Price, b.Price), strings.Compare(a.Key, b.Key))
		})
	case orderByUpdated:
		slices.SortStableFunc(matched, func(a, b domain.PriceRecord) int {
			return cmp.Or(b.LastUpdated.Compare(a.LastUpdated), strings.Compare(a.Key, b.Key))
		})
	default:
		slices.SortStableFunc(matched, func(a, b domain.PriceRecord) int {
			return strings.Compare(a.Key, b.Key)
		})
	}

	total := len(matched)
	start := min(q.offset(), total)
	end := min(start+q.limit(), total)
	return matched[start:end], total
}

func (q *PriceQuery) orderClause() string {
	if col, ok := validOrderBy[q.OrderBy]; ok {
		return col
	}
	return defaultOrderBy
}

func (q *PriceQuery) limit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

func (q *PriceQuery) offset() int {
	return max(q.Offset, 0)
}
