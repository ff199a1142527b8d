package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// DealFilter narrows deal listings and exports.
type DealFilter struct {
	SearchID  string
	Verdict   string
	MinProfit float64
	OrderBy   string
	Limit     int
	Offset    int
}

func (f *DealFilter) values() url.Values {
	q := url.Values{}
	if f.SearchID != "" {
		q.Set("search_id", f.SearchID)
	}
	if f.Verdict != "" {
		q.Set("verdict", f.Verdict)
	}
	if f.MinProfit != 0 {
		q.Set("min_profit", strconv.FormatFloat(f.MinProfit, 'f', -1, 64))
	}
	if f.OrderBy != "" {
		q.Set("order_by", f.OrderBy)
	}
	return q
}

// DealsPage is one page of stored deals.
type DealsPage struct {
	Deals  []domain.Deal `json:"deals"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListDeals returns stored deals, best first.
func (c *Client) ListDeals(ctx context.Context, f DealFilter) (*DealsPage, error) {
	q := f.values()
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	var page DealsPage
	if err := c.get(ctx, withQuery("/api/v1/deals", q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExportDeals returns the matching deals as CSV.
func (c *Client) ExportDeals(ctx context.Context, f DealFilter) ([]byte, error) {
	return c.raw(ctx, http.MethodGet, withQuery("/api/v1/deals/export", f.values()), nil)
}
