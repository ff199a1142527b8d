// Package source fetches local marketplace listings from a scraper feed and
// turns them into validated domain.ListingRecord values. Every record that
// leaves this package has a title, a non-negative asking price and a
// one-way distance from home.
package source

import (
	"context"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// SearchQuery describes one local marketplace search.
type SearchQuery struct {
	Term       string
	Site       string
	PostalCode string
	RadiusMi   int
	MaxPrice   *float64
	MaxResults int
}

// QueryFromSearch builds a query from a saved search.
func QueryFromSearch(s *domain.SavedSearch) SearchQuery {
	return SearchQuery{
		Term:       s.Query,
		Site:       s.Site,
		PostalCode: s.PostalCode,
		RadiusMi:   s.RadiusMi,
		MaxPrice:   s.MaxPrice,
		MaxResults: s.MaxResults,
	}
}

// ListingSource returns the validated listings matching a query.
type ListingSource interface {
	Fetch(ctx context.Context, q SearchQuery) ([]domain.ListingRecord, error)
}
