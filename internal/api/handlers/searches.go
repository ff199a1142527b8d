package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/internal/store"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// SearchHandler handles saved search CRUD operations.
type SearchHandler struct {
	store store.Store
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s store.Store) *SearchHandler {
	return &SearchHandler{store: s}
}

// SearchBody is the writable part of a saved search.
type SearchBody struct {
	Name       string   `json:"name"                   minLength:"1" doc:"Display name"                 example:"Consoles near Redding"`
	Query      string   `json:"query"                  minLength:"1" doc:"Marketplace search terms"     example:"xbox series x"`
	Site       string   `json:"site,omitempty"                       doc:"Marketplace site or region"   example:"redding"`
	PostalCode string   `json:"postal_code,omitempty"                doc:"Search origin postal code"    example:"96001"`
	RadiusMi   int      `json:"radius_miles,omitempty" minimum:"0"   doc:"Search radius in miles"`
	MaxPrice   *float64 `json:"max_price,omitempty"    minimum:"0"   doc:"Skip listings above this price"`
	MaxResults int      `json:"max_results,omitempty"  minimum:"0"   doc:"Listings fetched per run"     maximum:"500"`
	Enabled    *bool    `json:"enabled,omitempty"                    doc:"Run on schedule (default true)"`
}

func (b *SearchBody) apply(s *domain.SavedSearch) {
	s.Name = b.Name
	s.Query = b.Query
	s.Site = b.Site
	s.PostalCode = b.PostalCode
	s.RadiusMi = b.RadiusMi
	s.MaxPrice = b.MaxPrice
	s.MaxResults = b.MaxResults
	s.Enabled = b.Enabled == nil || *b.Enabled
}

// ListSearchesInput is the input for listing saved searches.
type ListSearchesInput struct {
	Enabled bool `query:"enabled" doc:"Only return enabled searches"`
}

// ListSearchesOutput is the response for listing saved searches.
type ListSearchesOutput struct {
	Body []domain.SavedSearch
}

// SearchIDInput identifies a saved search by path.
type SearchIDInput struct {
	ID string `path:"id" doc:"Saved search UUID"`
}

// SearchOutput is the response for a single saved search.
type SearchOutput struct {
	Body *domain.SavedSearch
}

// CreateSearchInput is the input for creating a saved search.
type CreateSearchInput struct {
	Body SearchBody
}

// UpdateSearchInput is the input for replacing a saved search.
type UpdateSearchInput struct {
	ID   string `path:"id" doc:"Saved search UUID"`
	Body SearchBody
}

// List returns all saved searches, optionally only enabled ones.
func (h *SearchHandler) List(ctx context.Context, input *ListSearchesInput) (*ListSearchesOutput, error) {
	searches, err := h.store.ListSearches(ctx, input.Enabled)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing searches: " + err.Error())
	}
	if searches == nil {
		searches = []domain.SavedSearch{}
	}
	return &ListSearchesOutput{Body: searches}, nil
}

// Get returns a saved search by ID.
func (h *SearchHandler) Get(ctx context.Context, input *SearchIDInput) (*SearchOutput, error) {
	s, err := h.store.GetSearch(ctx, input.ID)
	if err != nil {
		return nil, searchError("getting search", err)
	}
	return &SearchOutput{Body: s}, nil
}

// Create stores a new saved search.
func (h *SearchHandler) Create(ctx context.Context, input *CreateSearchInput) (*SearchOutput, error) {
	s := &domain.SavedSearch{}
	input.Body.apply(s)

	if err := h.store.CreateSearch(ctx, s); err != nil {
		return nil, huma.Error500InternalServerError("creating search: " + err.Error())
	}
	return &SearchOutput{Body: s}, nil
}

// Update replaces the writable fields of a saved search.
func (h *SearchHandler) Update(ctx context.Context, input *UpdateSearchInput) (*SearchOutput, error) {
	s := &domain.SavedSearch{ID: input.ID}
	input.Body.apply(s)

	if err := h.store.UpdateSearch(ctx, s); err != nil {
		return nil, searchError("updating search", err)
	}
	return &SearchOutput{Body: s}, nil
}

// Delete removes a saved search and its run history.
func (h *SearchHandler) Delete(ctx context.Context, input *SearchIDInput) (*struct{}, error) {
	if err := h.store.DeleteSearch(ctx, input.ID); err != nil {
		return nil, searchError("deleting search", err)
	}
	return nil, nil
}

func searchError(action string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound("search not found")
	}
	return huma.Error500InternalServerError(action + ": " + err.Error())
}

// RegisterSearchRoutes registers saved search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-searches",
		Method:      http.MethodGet,
		Path:        "/api/v1/searches",
		Summary:     "List saved searches",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/searches/{id}",
		Summary:     "Get a saved search",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-search",
		Method:        http.MethodPost,
		Path:          "/api/v1/searches",
		Summary:       "Create a saved search",
		Tags:          []string{"searches"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-search",
		Method:      http.MethodPut,
		Path:        "/api/v1/searches/{id}",
		Summary:     "Update a saved search",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-search",
		Method:        http.MethodDelete,
		Path:          "/api/v1/searches/{id}",
		Summary:       "Delete a saved search",
		Tags:          []string{"searches"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)
}
