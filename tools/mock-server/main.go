// Package main implements a mock upstream server for local development.
// It serves canned responses that simulate the eBay Browse API, the eBay
// OAuth token endpoint and the scraper listing feed, so localflipper can
// run end to end without real credentials.
package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/localflipper/pkg/logger"
)

//go:embed testdata/search_response.json
var defaultSearchFixture []byte

//go:embed testdata/listings.json
var defaultListingsFixture []byte

type browseAPIResponse struct {
	ItemSummaries []json.RawMessage `json:"itemSummaries"`
	Total         int               `json:"total"`
	Offset        int               `json:"offset"`
	Limit         int               `json:"limit"`
	Next          string            `json:"next"`
}

type feedResponse struct {
	Listings []json.RawMessage `json:"listings"`
}

type titled struct {
	Title string `json:"title"`
}

// indexedItem pairs a fixture record with its lowercased title for matching.
type indexedItem struct {
	raw   json.RawMessage
	title string
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	searchFile := flag.String("fixture", "", "path to an eBay search response fixture (default: embedded)")
	listingsFile := flag.String("listings", "", "path to a listing feed fixture (default: embedded)")
	feedKey := flag.String("feed-key", "", "bearer token the listing feed requires (empty disables the check)")
	logLevel := flag.String("log-level", "debug", "log level")
	flag.Parse()

	log := logger.New(*logLevel, "text")

	search, err := loadFixture[browseAPIResponse](*searchFile, defaultSearchFixture)
	if err != nil {
		log.Error("failed to load search fixture", "path", *searchFile, "error", err)
		os.Exit(1)
	}
	feed, err := loadFixture[feedResponse](*listingsFile, defaultListingsFixture)
	if err != nil {
		log.Error("failed to load listings fixture", "path", *listingsFile, "error", err)
		os.Exit(1)
	}
	log.Info("loaded fixtures", "items", len(search.ItemSummaries), "listings", len(feed.Listings))

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock upstream server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newMux(log, search, feed, *feedKey),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(log *slog.Logger, search *browseAPIResponse, feed *feedResponse, feedKey string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(log))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", searchHandler(log, search))
	mux.HandleFunc("GET /listings", feedHandler(log, feed, feedKey))
	return requestLogger(log, mux)
}

// loadFixture decodes the JSON file at path, or the embedded fallback when
// path is empty.
func loadFixture[T any](path string, fallback []byte) (*T, error) {
	data := fallback
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil { //nolint:gosec // fixture path from trusted CLI flag
			return nil, fmt.Errorf("reading fixture: %w", err)
		}
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parsing fixture %q: %w", path, err)
	}
	return v, nil
}

func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Credentials must be present but are not checked.
		if _, _, ok := r.BasicAuth(); !ok {
			log.Warn("token request missing Basic Auth header")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   7200,
			"token_type":   "Application Access Token",
		})
		log.Info("issued mock token")
	}
}

func index(records []json.RawMessage) []indexedItem {
	items := make([]indexedItem, 0, len(records))
	for _, raw := range records {
		var t titled
		//nolint:errcheck,gosec // fixture data is trusted; title extraction is best-effort
		json.Unmarshal(raw, &t)
		items = append(items, indexedItem{raw: raw, title: strings.ToLower(t.Title)})
	}
	return items
}

// match returns the records whose title contains every word of q.
func match(items []indexedItem, q string) []json.RawMessage {
	words := strings.Fields(strings.ToLower(q))
	matched := []json.RawMessage{}
	for _, item := range items {
		if !slices.ContainsFunc(words, func(w string) bool { return !strings.Contains(item.title, w) }) {
			matched = append(matched, item.raw)
		}
	}
	return matched
}

func intParam(r *http.Request, name string, def, minimum int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v >= minimum {
		return v
	}
	return def
}

func searchHandler(log *slog.Logger, fixture *browseAPIResponse) http.HandlerFunc {
	items := index(fixture.ItemSummaries)

	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		q := r.URL.Query().Get("q")
		limit := intParam(r, "limit", 50, 1)
		offset := intParam(r, "offset", 0, 0)

		matched := match(items, q)
		total := len(matched)

		page := []json.RawMessage{}
		if offset < total {
			page = matched[offset:min(offset+limit, total)]
		}

		next := ""
		if offset+limit < total {
			next = fmt.Sprintf("/buy/browse/v1/item_summary/search?q=%s&offset=%d&limit=%d",
				q, offset+limit, limit)
		}

		writeJSON(w, http.StatusOK, browseAPIResponse{
			ItemSummaries: page,
			Total:         total,
			Offset:        offset,
			Limit:         limit,
			Next:          next,
		})
		log.Info("search", "query", q, "matched", total, "returned", len(page), "offset", offset, "limit", limit)
	}
}

func feedHandler(log *slog.Logger, fixture *feedResponse, key string) http.HandlerFunc {
	items := index(fixture.Listings)

	return func(w http.ResponseWriter, r *http.Request) {
		if key != "" && r.Header.Get("Authorization") != "Bearer "+key {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid feed key"})
			return
		}

		q := r.URL.Query().Get("q")
		matched := match(items, q)
		if limit := intParam(r, "limit", 0, 1); limit > 0 && limit < len(matched) {
			matched = matched[:limit]
		}

		writeJSON(w, http.StatusOK, feedResponse{Listings: matched})
		log.Info("feed", "query", q, "postal", r.URL.Query().Get("postal"), "returned", len(matched))
	}
}
