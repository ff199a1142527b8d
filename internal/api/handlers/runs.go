package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/internal/engine"
	"github.com/donaldgifford/localflipper/internal/store"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Runner executes saved searches.
type Runner interface {
	RunAll(ctx context.Context) ([]engine.RunSummary, error)
	RunSearch(ctx context.Context, s *domain.SavedSearch) (*engine.RunSummary, error)
}

// RunHandler triggers search runs and reports their history.
type RunHandler struct {
	runner Runner
	store  store.Store
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(r Runner, s store.Store) *RunHandler {
	return &RunHandler{runner: r, store: s}
}

const defaultRunHistoryLimit = 20

// RunAllOutput is the response for running every enabled search.
type RunAllOutput struct {
	Body struct {
		Runs   []engine.RunSummary `json:"runs"`
		Errors string              `json:"errors,omitempty" doc:"Failures of individual searches, if any"`
	}
}

// RunOneOutput is the response for running one saved search.
type RunOneOutput struct {
	Body *engine.RunSummary
}

// ListRunsInput selects a saved search's run history.
type ListRunsInput struct {
	ID    string `path:"id"     doc:"Saved search UUID"`
	Limit int    `query:"limit" doc:"Number of runs (default 20)" minimum:"0" maximum:"200"`
}

// ListRunsOutput is the run history of a saved search, newest first.
type ListRunsOutput struct {
	Body []domain.SearchRun
}

// RunAll runs all enabled saved searches and sends pending alerts. A
// failing search does not fail the request; its error is reported
// alongside the successful runs.
func (h *RunHandler) RunAll(ctx context.Context, _ *struct{}) (*RunAllOutput, error) {
	runs, err := h.runner.RunAll(ctx)
	if err != nil && len(runs) == 0 {
		return nil, huma.Error500InternalServerError("running searches: " + err.Error())
	}

	out := &RunAllOutput{}
	out.Body.Runs = runs
	if out.Body.Runs == nil {
		out.Body.Runs = []engine.RunSummary{}
	}
	if err != nil {
		out.Body.Errors = err.Error()
	}
	return out, nil
}

// RunOne runs a single saved search, enabled or not.
func (h *RunHandler) RunOne(ctx context.Context, input *SearchIDInput) (*RunOneOutput, error) {
	s, err := h.store.GetSearch(ctx, input.ID)
	if err != nil {
		return nil, searchError("getting search", err)
	}

	sum, err := h.runner.RunSearch(ctx, s)
	if err != nil {
		return nil, huma.Error502BadGateway("search run failed: " + err.Error())
	}
	return &RunOneOutput{Body: sum}, nil
}

// ListRuns returns the run history of a saved search.
func (h *RunHandler) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultRunHistoryLimit
	}

	runs, err := h.store.ListSearchRuns(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching run history failed: " + err.Error())
	}
	if runs == nil {
		runs = []domain.SearchRun{}
	}
	return &ListRunsOutput{Body: runs}, nil
}

// RegisterRunRoutes registers run endpoints with the Huma API.
func RegisterRunRoutes(api huma.API, h *RunHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-all-searches",
		Method:      http.MethodPost,
		Path:        "/api/v1/run",
		Summary:     "Run all enabled searches",
		Description: "Fetches, evaluates and stores deals for every enabled saved search, then sends alerts.",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RunAll)

	huma.Register(api, huma.Operation{
		OperationID: "run-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/searches/{id}/run",
		Summary:     "Run one saved search",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.RunOne)

	huma.Register(api, huma.Operation{
		OperationID: "list-search-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/searches/{id}/runs",
		Summary:     "List runs of a saved search",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListRuns)
}
