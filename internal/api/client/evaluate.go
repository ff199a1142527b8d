package client

import (
	"context"
	"time"

	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// EvaluateRequest asks the server to evaluate one listing. Comparables
// are fetched live when nil.
type EvaluateRequest struct {
	Listing     domain.ListingRecord      `json:"listing"`
	Comparables *domain.ComparableSaleSet `json:"comparables,omitempty"`
	LocalSupply int                       `json:"local_supply,omitempty"`
	Fuel        *score.FuelParams         `json:"fuel,omitempty"`
}

// EvaluateResponse is the evaluation of one listing.
type EvaluateResponse struct {
	Result            domain.EvaluationResult `json:"result"`
	ComparablesSource string                  `json:"comparables_source"`
}

// Evaluate evaluates a single listing.
func (c *Client) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	var resp EvaluateResponse
	if err := c.post(ctx, "/api/v1/evaluate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CleanResponse is seller text with boilerplate removed, plus the seller
// rating it implies.
type CleanResponse struct {
	Cleaned      string              `json:"cleaned"`
	SellerRating domain.SellerRating `json:"seller_rating"`
	SellerFlags  []string            `json:"seller_flags,omitempty"`
}

// Clean cleans seller-written text.
func (c *Client) Clean(ctx context.Context, title, text string) (*CleanResponse, error) {
	body := map[string]string{"title": title, "text": text}
	var resp CleanResponse
	if err := c.post(ctx, "/api/v1/clean", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quota is the server's eBay daily quota usage.
type Quota struct {
	Enabled   bool      `json:"enabled"`
	Used      int64     `json:"used"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Quota returns the eBay daily quota usage.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
