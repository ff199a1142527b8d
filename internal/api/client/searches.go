package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// SearchRequest contains the fields the API accepts for create and update.
type SearchRequest struct {
	Name       string   `json:"name"`
	Query      string   `json:"query"`
	Site       string   `json:"site,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	RadiusMi   int      `json:"radius_miles,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
	Enabled    *bool    `json:"enabled,omitempty"`
}

// SearchRequestFrom copies the editable fields of a saved search.
func SearchRequestFrom(s *domain.SavedSearch) SearchRequest {
	enabled := s.Enabled
	return SearchRequest{
		Name:       s.Name,
		Query:      s.Query,
		Site:       s.Site,
		PostalCode: s.PostalCode,
		RadiusMi:   s.RadiusMi,
		MaxPrice:   s.MaxPrice,
		MaxResults: s.MaxResults,
		Enabled:    &enabled,
	}
}

// ListSearches returns saved searches, optionally only enabled ones.
func (c *Client) ListSearches(ctx context.Context, enabledOnly bool) ([]domain.SavedSearch, error) {
	q := url.Values{}
	if enabledOnly {
		q.Set("enabled", strconv.FormatBool(true))
	}
	var searches []domain.SavedSearch
	if err := c.get(ctx, withQuery("/api/v1/searches", q), &searches); err != nil {
		return nil, err
	}
	return searches, nil
}

// GetSearch returns a single saved search by ID.
func (c *Client) GetSearch(ctx context.Context, id string) (*domain.SavedSearch, error) {
	var s domain.SavedSearch
	if err := c.get(ctx, "/api/v1/searches/"+url.PathEscape(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSearch creates a saved search.
func (c *Client) CreateSearch(ctx context.Context, req SearchRequest) (*domain.SavedSearch, error) {
	var created domain.SavedSearch
	if err := c.post(ctx, "/api/v1/searches", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSearch replaces a saved search's editable fields.
func (c *Client) UpdateSearch(ctx context.Context, id string, req SearchRequest) (*domain.SavedSearch, error) {
	var updated domain.SavedSearch
	if err := c.put(ctx, "/api/v1/searches/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetSearchEnabled enables or disables a saved search.
func (c *Client) SetSearchEnabled(ctx context.Context, id string, enabled bool) (*domain.SavedSearch, error) {
	s, err := c.GetSearch(ctx, id)
	if err != nil {
		return nil, err
	}
	req := SearchRequestFrom(s)
	req.Enabled = &enabled
	return c.UpdateSearch(ctx, id, req)
}

// DeleteSearch deletes a saved search by ID.
func (c *Client) DeleteSearch(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/searches/"+url.PathEscape(id), nil)
}
