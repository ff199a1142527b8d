package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/localflipper/internal/metrics"
	"github.com/donaldgifford/localflipper/pkg/logger"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const (
	defaultFeedTimeout  = 30 * time.Second
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 500 * time.Millisecond
	maxFeedBody         = 8 << 20
)

// ErrNoFeed is returned when a FeedSource has no URL configured.
var ErrNoFeed = errors.New("listing feed URL is not configured")

// feedResponse is the scraper feed's JSON envelope.
type feedResponse struct {
	Listings []RawListing `json:"listings"`
}

// FeedSource fetches listings from an HTTP scraper feed.
type FeedSource struct {
	feedURL     string
	apiKey      string
	client      *http.Client
	maxAttempts uint
	baseDelay   time.Duration
	maxResults  int
	validator   *Validator
	log         *slog.Logger
}

// FeedOption configures a FeedSource.
type FeedOption func(*FeedSource)

// WithAPIKey sends key as a bearer token on every request.
func WithAPIKey(key string) FeedOption {
	return func(f *FeedSource) {
		f.apiKey = key
	}
}

// WithFeedHTTPClient overrides the default HTTP client.
func WithFeedHTTPClient(hc *http.Client) FeedOption {
	return func(f *FeedSource) {
		f.client = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) FeedOption {
	return func(f *FeedSource) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithRetry sets how many attempts a fetch gets and the first backoff delay.
// The delay doubles after each failed attempt.
func WithRetry(attempts int, baseDelay time.Duration) FeedOption {
	return func(f *FeedSource) {
		if attempts > 0 {
			f.maxAttempts = uint(attempts)
		}
		if baseDelay > 0 {
			f.baseDelay = baseDelay
		}
	}
}

// WithDefaultMaxResults caps queries that do not set MaxResults.
func WithDefaultMaxResults(n int) FeedOption {
	return func(f *FeedSource) {
		f.maxResults = n
	}
}

// WithValidator replaces the validator applied to fetched records.
func WithValidator(v *Validator) FeedOption {
	return func(f *FeedSource) {
		f.validator = v
	}
}

// WithFeedLogger sets the logger.
func WithFeedLogger(l *slog.Logger) FeedOption {
	return func(f *FeedSource) {
		f.log = logger.Component(l, "source")
	}
}

// NewFeedSource creates a FeedSource reading from feedURL.
func NewFeedSource(feedURL string, opts ...FeedOption) *FeedSource {
	f := &FeedSource{
		feedURL:     feedURL,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultFeedTimeout,
		},
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultRetryBackoff,
		validator:   NewValidator(domain.Location{}),
		log:         logger.Component(nil, "source"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch queries the feed and returns the listings that pass validation.
// Transport failures and 5xx responses are retried with exponential
// backoff. Other non-2xx responses fail immediately.
func (f *FeedSource) Fetch(ctx context.Context, q SearchQuery) ([]domain.ListingRecord, error) {
	if f.feedURL == "" {
		return nil, ErrNoFeed
	}

	reqURL, err := f.buildURL(q)
	if err != nil {
		return nil, err
	}

	attempt := 0
	raw, err := backoff.Retry(ctx, func() ([]RawListing, error) {
		attempt++
		return f.fetchOnce(ctx, reqURL)
	},
		backoff.WithBackOff(f.newBackOff()),
		backoff.WithMaxTries(f.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			f.log.Warn("feed fetch failed, retrying",
				"query", q.Term,
				"attempt", attempt,
				"max_attempts", f.maxAttempts,
				"retry_in", next,
				"error", err,
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching listings for %q after %d attempts: %w", q.Term, attempt, err)
	}

	listings, rejected := f.validator.Validate(raw)
	metrics.ListingsFetchedTotal.WithLabelValues(sourceLabel(q.Site)).Add(float64(len(listings)))
	f.log.Info("fetched listings",
		"query", q.Term,
		"site", q.Site,
		"received", len(raw),
		"accepted", len(listings),
		"rejected", len(rejected),
	)

	if limit := f.limit(q); limit > 0 && len(listings) > limit {
		listings = listings[:limit]
	}
	return listings, nil
}

func (f *FeedSource) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	return b
}

func (f *FeedSource) limit(q SearchQuery) int {
	if q.MaxResults > 0 {
		return q.MaxResults
	}
	return f.maxResults
}

func (f *FeedSource) buildURL(q SearchQuery) (string, error) {
	u, err := url.Parse(f.feedURL)
	if err != nil {
		return "", fmt.Errorf("parsing feed URL: %w", err)
	}

	params := u.Query()
	params.Set("q", q.Term)
	if q.Site != "" {
		params.Set("site", q.Site)
	}
	if q.PostalCode != "" {
		params.Set("postal", q.PostalCode)
	}
	if q.RadiusMi > 0 {
		params.Set("radius", strconv.Itoa(q.RadiusMi))
	}
	if q.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', 2, 64))
	}
	if limit := f.limit(q); limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (f *FeedSource) fetchOnce(ctx context.Context, reqURL string) ([]RawListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating feed request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing feed request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("reading feed response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body)))
	}

	var out feedResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decoding feed response: %w", err))
	}
	return out.Listings, nil
}

func sourceLabel(site string) string {
	if site == "" {
		return "feed"
	}
	return site
}
