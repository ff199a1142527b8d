package ebay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/donaldgifford/localflipper/internal/metrics"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const (
	defaultComparablesLimit = 50
	defaultMaxPages         = 4
	defaultCurrency         = "USD"
)

// ErrEmptyQuery is returned when a comparable lookup has no search terms.
var ErrEmptyQuery = errors.New("empty comparables query")

// Market implements MarketData by paging through Browse API results until
// it has collected enough priced items.
type Market struct {
	client     EbayClient
	logger     *slog.Logger
	limit      int
	maxPages   int
	categoryID string
	currency   string
	filters    map[string]string
	nowFunc    func() time.Time
}

// MarketOption configures a Market.
type MarketOption func(*Market)

// WithComparablesLimit caps the number of comparables collected per query.
func WithComparablesLimit(n int) MarketOption {
	return func(m *Market) {
		if n > 0 {
			m.limit = n
		}
	}
}

// WithMaxPages caps the number of search pages fetched per query.
func WithMaxPages(n int) MarketOption {
	return func(m *Market) {
		if n > 0 {
			m.maxPages = n
		}
	}
}

// WithCategory restricts searches to an eBay category.
func WithCategory(id string) MarketOption {
	return func(m *Market) {
		m.categoryID = id
	}
}

// WithMarketLogger sets the logger.
func WithMarketLogger(l *slog.Logger) MarketOption {
	return func(m *Market) {
		m.logger = l
	}
}

// WithMarketNowFunc overrides the clock used to stamp AsOf.
func WithMarketNowFunc(f func() time.Time) MarketOption {
	return func(m *Market) {
		m.nowFunc = f
	}
}

// NewMarket creates a Market backed by client.
func NewMarket(client EbayClient, opts ...MarketOption) *Market {
	m := &Market{
		client:   client,
		logger:   slog.Default(),
		limit:    defaultComparablesLimit,
		maxPages: defaultMaxPages,
		currency: defaultCurrency,
		filters: map[string]string{
			"buyingOptions": "{FIXED_PRICE}",
			"priceCurrency": defaultCurrency,
		},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Comparables implements MarketData. The returned set keeps eBay's result
// order and is stamped with the lookup time as AsOf.
func (m *Market) Comparables(ctx context.Context, query string) (domain.ComparableSaleSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ComparableSaleSet{}, ErrEmptyQuery
	}

	set := domain.ComparableSaleSet{
		Query: query,
		AsOf:  m.nowFunc().UTC(),
	}

	req := SearchRequest{
		Query:      query,
		CategoryID: m.categoryID,
		Limit:      min(m.limit, maxSearchLimit),
		Filters:    maps.Clone(m.filters),
	}

	pages := 0
	for pages < m.maxPages && len(set.Sales) < m.limit {
		req.Offset = pages * req.Limit

		resp, err := m.client.Search(ctx, req)
		if err != nil {
			return domain.ComparableSaleSet{}, fmt.Errorf("searching comparables page %d: %w", pages, err)
		}
		pages++

		set.Sales = append(set.Sales, ToComparables(resp.Items, m.currency)...)

		if len(resp.Items) == 0 || !resp.HasMore {
			break
		}
	}

	if len(set.Sales) > m.limit {
		set.Sales = set.Sales[:m.limit]
	}

	metrics.ComparablesPerQuery.Observe(float64(len(set.Sales)))
	m.logger.Debug("fetched comparables",
		"query", query,
		"count", len(set.Sales),
		"pages", pages,
	)

	return set, nil
}
