package handlers

import (
	"context"
	"math"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/internal/ebay"
)

// QuotaHandler reports how much of the daily eBay call quota the
// comparables lookups have used.
type QuotaHandler struct {
	rl *ebay.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler. rl may be nil when eBay is not
// configured.
func NewQuotaHandler(rl *ebay.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		Enabled     bool    `json:"enabled" doc:"Whether comparables lookups are configured"`
		Exhausted   bool    `json:"exhausted" doc:"True once no lookups remain until the reset"`
		UsedPercent float64 `json:"used_percent" doc:"Share of the daily quota spent, 0-100"`
		ebay.QuotaSnapshot
	}
}

// GetQuota returns the current eBay API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	snap := h.rl.Snapshot()
	resp.Body.Enabled = true
	resp.Body.QuotaSnapshot = snap
	resp.Body.Exhausted = snap.Remaining <= 0
	if snap.Limit > 0 {
		resp.Body.UsedPercent = math.Round(float64(snap.Used)/float64(snap.Limit)*1000) / 10
	}
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the daily comparables lookup usage, remaining calls, and when the quota resets.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
