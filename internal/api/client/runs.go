package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// RunSummary describes one completed search run.
type RunSummary struct {
	SearchID  string        `json:"search_id"`
	RunID     string        `json:"run_id"`
	Listings  int           `json:"listings"`
	Evaluated int           `json:"evaluated"`
	Skipped   int           `json:"skipped"`
	Deals     []domain.Deal `json:"deals"`
}

// RunAllResult is the outcome of running every enabled search.
type RunAllResult struct {
	Runs   []RunSummary `json:"runs"`
	Errors string       `json:"errors,omitempty"`
}

// RunAll runs every enabled saved search on the server.
func (c *Client) RunAll(ctx context.Context) (*RunAllResult, error) {
	var res RunAllResult
	if err := c.post(ctx, "/api/v1/run", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RunSearch runs one saved search now.
func (c *Client) RunSearch(ctx context.Context, id string) (*RunSummary, error) {
	var sum RunSummary
	if err := c.post(ctx, "/api/v1/searches/"+url.PathEscape(id)+"/run", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ListRuns returns a saved search's recent runs, newest first.
func (c *Client) ListRuns(ctx context.Context, id string, limit int) ([]domain.SearchRun, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var runs []domain.SearchRun
	if err := c.get(ctx, withQuery("/api/v1/searches/"+url.PathEscape(id)+"/runs", q), &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
