package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/api/handlers"
	"github.com/donaldgifford/localflipper/internal/engine"
	storeMocks "github.com/donaldgifford/localflipper/internal/store/mocks"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// fakeRunner implements handlers.Runner for testing.
type fakeRunner struct {
	summaries []engine.RunSummary
	err       error
	ran       *domain.SavedSearch
}

func (f *fakeRunner) RunAll(_ context.Context) ([]engine.RunSummary, error) {
	return f.summaries, f.err
}

func (f *fakeRunner) RunSearch(_ context.Context, s *domain.SavedSearch) (*engine.RunSummary, error) {
	f.ran = s
	if f.err != nil {
		return nil, f.err
	}
	return &engine.RunSummary{SearchID: s.ID, RunID: "r1", Listings: 4}, nil
}

func TestRunHandler_RunAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runner     *fakeRunner
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "all succeed",
			runner:     &fakeRunner{summaries: []engine.RunSummary{{SearchID: "s1", RunID: "r1"}}},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"run_id":"r1"`},
		},
		{
			name:       "no searches",
			runner:     &fakeRunner{},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"runs":[]`},
		},
		{
			name: "partial failure is reported",
			runner: &fakeRunner{
				summaries: []engine.RunSummary{{SearchID: "s2", RunID: "r2"}},
				err:       errors.New("search broken: feed down"),
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"r2"`, `search broken: feed down`},
		},
		{
			name:       "total failure",
			runner:     &fakeRunner{err: errors.New("listing searches: db down")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"running searches"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterRunRoutes(api, handlers.NewRunHandler(tt.runner, storeMocks.NewMockStore(t)))

			resp := api.Post("/api/v1/run")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestRunHandler_RunOne(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSearch(mock.Anything, "s1").
		Return(&domain.SavedSearch{ID: "s1", Name: "Consoles", Enabled: false}, nil).Once()

	runner := &fakeRunner{}
	_, api := humatest.New(t)
	handlers.RegisterRunRoutes(api, handlers.NewRunHandler(runner, ms))

	resp := api.Post("/api/v1/searches/s1/run")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"listings":4`)
	require.NotNil(t, runner.ran)
	assert.Equal(t, "Consoles", runner.ran.Name)
}

func TestRunHandler_RunOne_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown search", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetSearch(mock.Anything, "nope").Return(nil, notFound("nope")).Once()

		_, api := humatest.New(t)
		handlers.RegisterRunRoutes(api, handlers.NewRunHandler(&fakeRunner{}, ms))

		resp := api.Post("/api/v1/searches/nope/run")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("run fails", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetSearch(mock.Anything, "s1").Return(&domain.SavedSearch{ID: "s1"}, nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterRunRoutes(api, handlers.NewRunHandler(&fakeRunner{err: errors.New("feed down")}, ms))

		resp := api.Post("/api/v1/searches/s1/run")
		require.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Contains(t, resp.Body.String(), "feed down")
	})
}

func TestRunHandler_ListRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantLimit  int
		runs       []domain.SearchRun
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:      "default limit",
			path:      "/api/v1/searches/s1/runs",
			wantLimit: 20,
			runs: []domain.SearchRun{
				{ID: "r1", SearchID: "s1", StartedAt: time.Now(), Status: "succeeded", Deals: 2},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"succeeded"`,
		},
		{
			name:       "explicit limit and empty history",
			path:       "/api/v1/searches/s1/runs?limit=5",
			wantLimit:  5,
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "store error",
			path:       "/api/v1/searches/s1/runs",
			wantLimit:  20,
			err:        errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching run history failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListSearchRuns(mock.Anything, "s1", tt.wantLimit).Return(tt.runs, tt.err).Once()

			_, api := humatest.New(t)
			handlers.RegisterRunRoutes(api, handlers.NewRunHandler(&fakeRunner{}, ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
