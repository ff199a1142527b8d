package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/localflipper/internal/metrics"
)

const (
	defaultBrowseURL   = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	defaultMarketplace = "EBAY_US"
	defaultSearchLimit = 50
	maxSearchLimit     = 200
	maxBrowseBody      = 8 << 20
)

// APIError is a non-200 answer from the Browse API. Message is the first
// entry of eBay's error list, or the raw body when there is none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eBay API error (status %d): %s", e.StatusCode, e.Message)
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// invalidator is implemented by token providers that can drop a cached
// token after the API rejects it.
type invalidator interface {
	Invalidate()
}

// BrowseClient implements EbayClient against the Browse item_summary
// search endpoint.
type BrowseClient struct {
	tokens      TokenProvider
	endpoint    string
	marketplace string
	hc          *http.Client
	limiter     *RateLimiter
}

// BrowseOption configures the BrowseClient.
type BrowseOption func(*BrowseClient)

// WithBrowseURL overrides the search endpoint.
func WithBrowseURL(u string) BrowseOption {
	return func(c *BrowseClient) { c.endpoint = u }
}

// WithMarketplace sets the X-EBAY-C-MARKETPLACE-ID sent with each search.
func WithMarketplace(m string) BrowseOption {
	return func(c *BrowseClient) { c.marketplace = m }
}

// WithBrowseHTTPClient overrides the default HTTP client.
func WithBrowseHTTPClient(hc *http.Client) BrowseOption {
	return func(c *BrowseClient) { c.hc = hc }
}

// WithRateLimiter makes every Search call wait on r first.
func WithRateLimiter(r *RateLimiter) BrowseOption {
	return func(c *BrowseClient) { c.limiter = r }
}

// NewBrowseClient creates a Browse API client that authenticates with tokens.
func NewBrowseClient(tokens TokenProvider, opts ...BrowseOption) *BrowseClient {
	c := &BrowseClient{
		tokens:      tokens,
		endpoint:    defaultBrowseURL,
		marketplace: defaultMarketplace,
		hc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one query. Each call spends one unit of the daily quota when a
// limiter is set. A 401 is retried once with a fresh token if the provider
// can invalidate its cache.
func (c *BrowseClient) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if err := c.reserve(ctx); err != nil {
		return nil, err
	}

	resp, err := c.searchOnce(ctx, req)
	if inv, ok := c.tokens.(invalidator); ok && isUnauthorized(err) {
		inv.Invalidate()
		resp, err = c.searchOnce(ctx, req)
	}
	return resp, err
}

func (c *BrowseClient) reserve(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.EbayDailyLimitHits.Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.EbayAPICallsTotal.Inc()
	metrics.EbayDailyUsage.Set(float64(c.limiter.DailyCount()))
	return nil
}

func (c *BrowseClient) searchOnce(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+searchParams(req).Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBrowseBody))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var page struct {
		ItemSummaries []ItemSummary `json:"itemSummaries"`
		Total         int           `json:"total"`
		Offset        int           `json:"offset"`
		Limit         int           `json:"limit"`
		Next          string        `json:"next"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return &SearchResponse{
		Items:   page.ItemSummaries,
		Total:   page.Total,
		Offset:  page.Offset,
		Limit:   page.Limit,
		HasMore: page.Next != "",
	}, nil
}

// errorMessage pulls the first message out of an eBay error envelope.
func errorMessage(body []byte) string {
	var env struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &env) == nil && len(env.Errors) > 0 && env.Errors[0].Message != "" {
		return env.Errors[0].Message
	}
	return strings.TrimSpace(string(body))
}

func searchParams(req SearchRequest) url.Values {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	v := url.Values{}
	v.Set("q", req.Query)
	v.Set("limit", strconv.Itoa(min(limit, maxSearchLimit)))
	if req.CategoryID != "" {
		v.Set("category_ids", req.CategoryID)
	}
	if req.Offset > 0 {
		v.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Sort != "" {
		v.Set("sort", req.Sort)
	}
	if len(req.Filters) > 0 {
		v.Set("filter", encodeFilters(req.Filters))
	}
	return v
}

// encodeFilters renders filters in the Browse API "key:value,key:value"
// form, sorted by key so URLs are stable.
func encodeFilters(filters map[string]string) string {
	parts := make([]string, 0, len(filters))
	for _, k := range slices.Sorted(maps.Keys(filters)) {
		parts = append(parts, k+":"+filters[k])
	}
	return strings.Join(parts, ",")
}
