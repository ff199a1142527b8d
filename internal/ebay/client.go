// Package ebay fetches market comparables from the eBay Browse API. The
// HTTP client, OAuth token source and comparable lookup sit behind
// interfaces so the pipeline can be tested without the network.
package ebay

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// SearchRequest defines the parameters for an eBay search.
type SearchRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Sort       string
	Filters    map[string]string
}

// SearchResponse holds one page of eBay search results.
type SearchResponse struct {
	Items   []ItemSummary
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// EbayClient runs a single Browse API search.
type EbayClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// TokenProvider supplies OAuth2 application tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// MarketData returns the comparable sales for an item query.
type MarketData interface {
	Comparables(ctx context.Context, query string) (domain.ComparableSaleSet, error)
}

// ErrNotConfigured is returned by lookups when no eBay credentials are set.
var ErrNotConfigured = errors.New("eBay credentials not configured")

// Unconfigured is the MarketData used when no eBay credentials are set.
// Every lookup fails with ErrNotConfigured.
type Unconfigured struct{}

// Comparables always returns ErrNotConfigured.
func (Unconfigured) Comparables(context.Context, string) (domain.ComparableSaleSet, error) {
	return domain.ComparableSaleSet{}, ErrNotConfigured
}
