package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/pkg/extract"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// CleanInput is the request body for the clean endpoint.
type CleanInput struct {
	Body struct {
		Title string `json:"title,omitempty" doc:"Listing title, used only for the seller rating"`
		Text  string `json:"text"            doc:"Seller-written description"             maxLength:"20000"`
	}
}

// CleanOutput is the response body for the clean endpoint.
type CleanOutput struct {
	Body struct {
		Cleaned      string              `json:"cleaned"`
		SellerRating domain.SellerRating `json:"seller_rating"`
		SellerFlags  []string            `json:"seller_flags,omitempty"`
	}
}

// Clean strips contact details, emoji and repeated punctuation from a
// description and rates the seller from the remaining text.
func Clean(_ context.Context, input *CleanInput) (*CleanOutput, error) {
	out := &CleanOutput{}
	out.Body.Cleaned = extract.CleanSellerText(input.Body.Text)
	out.Body.SellerRating, out.Body.SellerFlags = extract.RateSeller(input.Body.Title, out.Body.Cleaned)
	return out, nil
}

// RegisterCleanRoutes registers the clean endpoint with the Huma API.
func RegisterCleanRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "clean-text",
		Method:      http.MethodPost,
		Path:        "/api/v1/clean",
		Summary:     "Clean seller text",
		Description: "Normalizes a seller-written description and reports trust flags found in it.",
		Tags:        []string{"scoring"},
	}, Clean)
}
