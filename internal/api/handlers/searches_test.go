package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/api/handlers"
	"github.com/donaldgifford/localflipper/internal/store"
	storeMocks "github.com/donaldgifford/localflipper/internal/store/mocks"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

var errDB = errors.New("db error")

func notFound(id string) error {
	return fmt.Errorf("search %s: %w", id, store.ErrNotFound)
}

func hasName(name string) any {
	return mock.MatchedBy(func(s *domain.SavedSearch) bool { return s.Name == name })
}

func TestSearchRoutes(t *testing.T) {
	t.Parallel()

	consoles := domain.SavedSearch{ID: "s1", Name: "Consoles", Query: "xbox series x", Enabled: true}

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		expect func(m *storeMocks.MockStore)
		status int
		want   string
	}{
		// list
		{
			name: "list all", method: http.MethodGet, path: "/api/v1/searches",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSearches(mock.Anything, false).Return([]domain.SavedSearch{consoles}, nil).Once()
			},
			status: http.StatusOK, want: `"Consoles"`,
		},
		{
			name: "list enabled only renders empty array", method: http.MethodGet, path: "/api/v1/searches?enabled=true",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSearches(mock.Anything, true).Return(nil, nil).Once()
			},
			status: http.StatusOK, want: `[]`,
		},
		{
			name: "list store failure", method: http.MethodGet, path: "/api/v1/searches",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSearches(mock.Anything, false).Return(nil, errDB).Once()
			},
			status: http.StatusInternalServerError, want: "listing searches",
		},

		// get
		{
			name: "get", method: http.MethodGet, path: "/api/v1/searches/s1",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSearch(mock.Anything, "s1").Return(&consoles, nil).Once()
			},
			status: http.StatusOK, want: `"xbox series x"`,
		},
		{
			name: "get unknown id", method: http.MethodGet, path: "/api/v1/searches/s-missing",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSearch(mock.Anything, "s-missing").Return(nil, notFound("s-missing")).Once()
			},
			status: http.StatusNotFound, want: "search not found",
		},
		{
			name: "get store failure", method: http.MethodGet, path: "/api/v1/searches/s1",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSearch(mock.Anything, "s1").Return(nil, errDB).Once()
			},
			status: http.StatusInternalServerError, want: "getting search",
		},

		// create
		{
			name: "create defaults to enabled", method: http.MethodPost, path: "/api/v1/searches",
			body: map[string]any{"name": "Vacuums", "query": "dyson v11", "max_price": 150.0},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateSearch(mock.Anything, mock.MatchedBy(func(s *domain.SavedSearch) bool {
						return s.Name == "Vacuums" && s.Query == "dyson v11" &&
							s.Enabled && s.MaxPrice != nil && *s.MaxPrice == 150
					})).
					Run(func(_ context.Context, s *domain.SavedSearch) { s.ID = "new-id" }).
					Return(nil).Once()
			},
			status: http.StatusCreated, want: `"new-id"`,
		},
		{
			name: "create paused", method: http.MethodPost, path: "/api/v1/searches",
			body: map[string]any{"name": "Bikes", "query": "road bike 56cm", "enabled": false},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateSearch(mock.Anything, hasName("Bikes")).Return(nil).Once()
			},
			status: http.StatusCreated, want: `"enabled":false`,
		},
		{
			name: "create without name", method: http.MethodPost, path: "/api/v1/searches",
			body:   map[string]any{"query": "xbox"},
			status: http.StatusUnprocessableEntity, want: "expected required property name to be present",
		},
		{
			name: "create without query", method: http.MethodPost, path: "/api/v1/searches",
			body:   map[string]any{"name": "Consoles"},
			status: http.StatusUnprocessableEntity, want: "expected required property query to be present",
		},
		{
			name: "create with negative radius", method: http.MethodPost, path: "/api/v1/searches",
			body:   map[string]any{"name": "Consoles", "query": "ps5", "radius_miles": -1},
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "create malformed body", method: http.MethodPost, path: "/api/v1/searches",
			body:   strings.NewReader(`{invalid}`),
			status: http.StatusBadRequest,
		},
		{
			name: "create store failure", method: http.MethodPost, path: "/api/v1/searches",
			body: map[string]any{"name": "Consoles", "query": "ps5"},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateSearch(mock.Anything, mock.Anything).Return(errDB).Once()
			},
			status: http.StatusInternalServerError, want: "creating search",
		},

		// update
		{
			name: "update", method: http.MethodPut, path: "/api/v1/searches/s1",
			body: map[string]any{"name": "Consoles v2", "query": "xbox series s"},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().UpdateSearch(mock.Anything, mock.MatchedBy(func(s *domain.SavedSearch) bool {
					return s.ID == "s1" && s.Name == "Consoles v2"
				})).Return(nil).Once()
			},
			status: http.StatusOK, want: `"Consoles v2"`,
		},
		{
			name: "update unknown id", method: http.MethodPut, path: "/api/v1/searches/s9",
			body: map[string]any{"name": "Consoles v2", "query": "xbox"},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().UpdateSearch(mock.Anything, hasName("Consoles v2")).Return(notFound("s9")).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name: "update store failure", method: http.MethodPut, path: "/api/v1/searches/s1",
			body: map[string]any{"name": "Consoles v2", "query": "xbox"},
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().UpdateSearch(mock.Anything, hasName("Consoles v2")).Return(errDB).Once()
			},
			status: http.StatusInternalServerError,
		},

		// delete
		{
			name: "delete", method: http.MethodDelete, path: "/api/v1/searches/s1",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteSearch(mock.Anything, "s1").Return(nil).Once()
			},
			status: http.StatusNoContent,
		},
		{
			name: "delete unknown id", method: http.MethodDelete, path: "/api/v1/searches/s9",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteSearch(mock.Anything, "s9").Return(notFound("s9")).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name: "delete store failure", method: http.MethodDelete, path: "/api/v1/searches/s1",
			expect: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteSearch(mock.Anything, "s1").Return(errDB).Once()
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.expect != nil {
				tt.expect(ms)
			}

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(ms))

			var args []any
			if tt.body != nil {
				args = append(args, tt.body)
			}
			resp := api.Do(tt.method, tt.path, args...)

			require.Equal(t, tt.status, resp.Code, resp.Body.String())
			if tt.want != "" {
				assert.Contains(t, resp.Body.String(), tt.want)
			}
		})
	}
}
