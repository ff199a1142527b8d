package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByRank        = "rank"
	orderByProfit      = "profit"
	orderByEvaluatedAt = "evaluated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByRank:        "demand_rank DESC, profit_estimate DESC, source_id ASC",
	orderByProfit:      "profit_estimate DESC, source_id ASC",
	orderByEvaluatedAt: "evaluated_at DESC, source_id ASC",
}

const defaultOrderBy = "demand_rank DESC, profit_estimate DESC, source_id ASC"

const baseDealsSelect = `SELECT id, COALESCE(search_id::text, ''), search_term,
	listing, evaluation, evaluated_at, notified
FROM deals`

const countDealsSelect = "SELECT COUNT(*) FROM deals"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a deal
// query. It returns the data query, the count query, and the positional
// parameters shared by both.
func (q *DealQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.SearchID != nil {
		conditions = append(conditions, fmt.Sprintf("search_id = $%d", paramIdx))
		args = append(args, *q.SearchID)
		paramIdx++
	}

	if q.Verdict != nil {
		conditions = append(conditions, fmt.Sprintf("verdict = $%d", paramIdx))
		args = append(args, *q.Verdict)
		paramIdx++
	}

	if q.MinProfit != nil {
		conditions = append(conditions, fmt.Sprintf("profit_estimate >= $%d", paramIdx))
		args = append(args, *q.MinProfit)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseDealsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countDealsSelect + whereClause

	return dataSQL, countSQL, args
}
