package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/source"
	"github.com/donaldgifford/localflipper/pkg/logger"
)

func searchFixture(t *testing.T) *browseAPIResponse {
	t.Helper()
	fixture, err := loadFixture[browseAPIResponse](filepath.Join("testdata", "search_response.json"), nil)
	require.NoError(t, err)
	return fixture
}

func feedFixture(t *testing.T) *feedResponse {
	t.Helper()
	fixture, err := loadFixture[feedResponse]("", defaultListingsFixture)
	require.NoError(t, err)
	return fixture
}

func getJSON(t *testing.T, h http.Handler, target, auth string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}
	return w.Code
}

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	search := searchFixture(t)
	require.NotEmpty(t, search.ItemSummaries)
	assert.Equal(t, len(search.ItemSummaries), search.Total)

	embedded, err := loadFixture[browseAPIResponse]("", defaultSearchFixture)
	require.NoError(t, err)
	assert.Len(t, embedded.ItemSummaries, len(search.ItemSummaries))

	assert.NotEmpty(t, feedFixture(t).Listings)

	_, err = loadFixture[feedResponse](filepath.Join("testdata", "missing.json"), defaultListingsFixture)
	assert.Error(t, err)

	_, err = loadFixture[feedResponse]("", []byte("{not json"))
	assert.Error(t, err)
}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/identity/v1/oauth2/token", http.NoBody)
		req.SetBasicAuth("app-id", "cert-id")
		w := httptest.NewRecorder()
		tokenHandler(logger.Discard())(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp["access_token"])
		assert.Equal(t, "Application Access Token", resp["token_type"])
		assert.InDelta(t, 7200, resp["expires_in"], 0)
	})

	t.Run("missing auth", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/identity/v1/oauth2/token", http.NoBody)
		w := httptest.NewRecorder()
		tokenHandler(logger.Discard())(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "invalid_client", resp["error"])
	})
}

func TestSearchHandler(t *testing.T) {
	t.Parallel()

	fixture := searchFixture(t)
	h := searchHandler(logger.Discard(), fixture)
	const bearer = "Bearer mock"
	total := len(fixture.ItemSummaries)

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantItems int
		wantNext  bool
	}{
		{name: "all items", target: "/s", wantTotal: total, wantItems: total},
		{name: "multi word query", target: "/s?q=xbox+series+x", wantTotal: 4, wantItems: 4},
		{name: "case insensitive", target: "/s?q=NINTENDO", wantTotal: 2, wantItems: 2},
		{name: "first page", target: "/s?limit=3&offset=0", wantTotal: total, wantItems: 3, wantNext: true},
		{name: "last page", target: "/s?limit=50&offset=5", wantTotal: total, wantItems: total - 5},
		{name: "offset past end", target: "/s?offset=100", wantTotal: total, wantItems: 0},
		{name: "no results", target: "/s?q=nonexistent_xyz_product", wantTotal: 0, wantItems: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var resp browseAPIResponse
			require.Equal(t, http.StatusOK, getJSON(t, h, tt.target, bearer, &resp))
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.NotNil(t, resp.ItemSummaries)
			assert.Len(t, resp.ItemSummaries, tt.wantItems)
			assert.Equal(t, tt.wantNext, resp.Next != "")
		})
	}

	t.Run("requires bearer token", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusUnauthorized, getJSON(t, h, "/s", "", nil))
	})
}

func TestFeedHandler(t *testing.T) {
	t.Parallel()

	open := feedHandler(logger.Discard(), feedFixture(t), "")
	locked := feedHandler(logger.Discard(), feedFixture(t), "secret")

	var resp feedResponse
	require.Equal(t, http.StatusOK, getJSON(t, open, "/listings?q=xbox+series+x", "", &resp))
	assert.Len(t, resp.Listings, 3)

	resp = feedResponse{}
	require.Equal(t, http.StatusOK, getJSON(t, open, "/listings?q=xbox&limit=2", "", &resp))
	assert.Len(t, resp.Listings, 2)

	resp = feedResponse{}
	require.Equal(t, http.StatusOK, getJSON(t, open, "/listings?q=playstation", "", &resp))
	assert.NotNil(t, resp.Listings)
	assert.Empty(t, resp.Listings)

	assert.Equal(t, http.StatusUnauthorized, getJSON(t, locked, "/listings?q=xbox", "Bearer wrong", nil))
	assert.Equal(t, http.StatusOK, getJSON(t, locked, "/listings?q=xbox", "Bearer secret", nil))
}

// The real clients must be able to talk to the mock end to end.
func TestMux_RealClients(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newMux(logger.Discard(), searchFixture(t), feedFixture(t), "k"))
	t.Cleanup(srv.Close)
	ctx := context.Background()

	feed := source.NewFeedSource(srv.URL+"/listings",
		source.WithAPIKey("k"),
		source.WithFeedHTTPClient(srv.Client()),
	)
	listings, err := feed.Fetch(ctx, source.SearchQuery{Term: "xbox series x", Site: "craigslist"})
	require.NoError(t, err)
	assert.Len(t, listings, 3)

	tokens := ebay.NewOAuthTokenProvider("app", "cert",
		ebay.WithTokenURL(srv.URL+"/identity/v1/oauth2/token"),
		ebay.WithHTTPClient(srv.Client()),
	)
	browse := ebay.NewBrowseClient(tokens,
		ebay.WithBrowseURL(srv.URL+"/buy/browse/v1/item_summary/search"),
		ebay.WithBrowseHTTPClient(srv.Client()),
	)
	resp, err := browse.Search(ctx, ebay.SearchRequest{Query: "nintendo switch oled"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
