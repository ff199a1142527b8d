package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/internal/ebay"
	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Evaluator supplies the engine's scoring parameters and live comparables.
type Evaluator interface {
	Params() score.Params
	Fuel() score.FuelParams
	Comparables(ctx context.Context, title string) (domain.ComparableSaleSet, error)
}

// EvaluateHandler scores a single listing on demand.
type EvaluateHandler struct {
	ev Evaluator
}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler(ev Evaluator) *EvaluateHandler {
	return &EvaluateHandler{ev: ev}
}

// EvaluateInput is the request body for the evaluate endpoint.
type EvaluateInput struct {
	Body struct {
		Listing     domain.ListingRecord      `json:"listing"                doc:"Listing to evaluate"`
		Comparables *domain.ComparableSaleSet `json:"comparables,omitempty"  doc:"Comparable sales; fetched from eBay when omitted"`
		LocalSupply int                       `json:"local_supply,omitempty" doc:"Competing local listings"                    minimum:"0"`
		Fuel        *score.FuelParams         `json:"fuel,omitempty"         doc:"Overrides the configured fuel price and mpg"`
	}
}

// EvaluateOutput is the response body for the evaluate endpoint.
type EvaluateOutput struct {
	Body struct {
		Result            domain.EvaluationResult `json:"result"`
		ComparablesSource string                  `json:"comparables_source" enum:"request,live" doc:"Where the comparables came from"`
	}
}

// Evaluate runs the scoring pipeline for one listing.
func (h *EvaluateHandler) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	listing := &input.Body.Listing

	fuel := h.ev.Fuel()
	if input.Body.Fuel != nil {
		fuel = *input.Body.Fuel
	}

	source := "request"
	var comps domain.ComparableSaleSet
	if input.Body.Comparables != nil {
		comps = *input.Body.Comparables
	} else {
		source = "live"
		var err error
		comps, err = h.ev.Comparables(ctx, listing.Title)
		if err != nil {
			return nil, comparablesError(err)
		}
	}

	res, err := score.Evaluate(listing, comps, input.Body.LocalSupply, fuel, h.ev.Params())
	if err != nil {
		if errors.Is(err, score.ErrInvalidParameter) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("evaluation failed: " + err.Error())
	}

	out := &EvaluateOutput{}
	out.Body.Result = res
	out.Body.ComparablesSource = source
	return out, nil
}

func comparablesError(err error) error {
	switch {
	case errors.Is(err, ebay.ErrEmptyQuery):
		return huma.Error422UnprocessableEntity("listing title is required to look up comparables")
	case errors.Is(err, ebay.ErrDailyLimitReached):
		return huma.Error429TooManyRequests("daily eBay quota reached; supply comparables in the request")
	case errors.Is(err, ebay.ErrNotConfigured):
		return huma.Error503ServiceUnavailable("live comparables are not configured; supply comparables in the request")
	default:
		return huma.Error502BadGateway("fetching comparables: " + err.Error())
	}
}

// RegisterEvaluateRoutes registers the evaluate endpoint with the Huma API.
func RegisterEvaluateRoutes(api huma.API, h *EvaluateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "evaluate-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/evaluate",
		Summary:     "Evaluate a listing",
		Description: "Computes travel cost, demand, fair value, buy range, profit and verdict for one listing.",
		Tags:        []string{"scoring"},
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusTooManyRequests,
			http.StatusBadGateway,
		},
	}, h.Evaluate)
}
