package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/localflipper/internal/export"
	"github.com/donaldgifford/localflipper/internal/store"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const maxExportRows = 500

// DealsHandler handles deal query and export endpoints.
type DealsHandler struct {
	store store.Store
	now   func() time.Time
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s store.Store) *DealsHandler {
	return &DealsHandler{store: s, now: time.Now}
}

// DealFilterInput holds the filters shared by listing and export.
type DealFilterInput struct {
	SearchID  string  `query:"search_id"  doc:"Only deals from this saved search"`
	Verdict   string  `query:"verdict"    doc:"Only deals with this verdict"      enum:"profitable,marginal,not_profitable,"`
	MinProfit float64 `query:"min_profit" doc:"Minimum profit estimate"`
	OrderBy   string  `query:"order_by"   doc:"Sort order (default rank)"         enum:"rank,profit,evaluated_at,"`
}

func (f *DealFilterInput) query() *store.DealQuery {
	q := &store.DealQuery{OrderBy: f.OrderBy}
	if f.SearchID != "" {
		q.SearchID = &f.SearchID
	}
	if f.Verdict != "" {
		q.Verdict = &f.Verdict
	}
	if f.MinProfit != 0 {
		q.MinProfit = &f.MinProfit
	}
	return q
}

// ListDealsInput is the input for listing deals.
type ListDealsInput struct {
	DealFilterInput
	Limit  int `query:"limit"  doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset int `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListDealsOutput is the response for listing deals.
type ListDealsOutput struct {
	Body struct {
		Deals  []domain.Deal `json:"deals"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// ExportDealsInput is the input for exporting deals.
type ExportDealsInput struct {
	DealFilterInput
}

// ExportDealsOutput is a CSV download.
type ExportDealsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ListDeals returns stored deals, best first.
func (h *DealsHandler) ListDeals(ctx context.Context, input *ListDealsInput) (*ListDealsOutput, error) {
	q := input.query()
	q.Limit = input.Limit
	q.Offset = input.Offset

	deals, total, err := h.store.ListDeals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("deal query failed: " + err.Error())
	}
	if deals == nil {
		deals = []domain.Deal{}
	}

	resp := &ListDealsOutput{}
	resp.Body.Deals = deals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// ExportDeals returns the matching deals as a CSV attachment.
func (h *DealsHandler) ExportDeals(ctx context.Context, input *ExportDealsInput) (*ExportDealsOutput, error) {
	q := input.query()
	q.Limit = maxExportRows

	deals, _, err := h.store.ListDeals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("deal query failed: " + err.Error())
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, deals); err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	return &ExportDealsOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + export.Filename("deals", h.now()) + `"`,
		Body:               buf.Bytes(),
	}, nil
}

// RegisterDealRoutes registers deal endpoints with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List deals",
		Description: "Returns stored deals ordered by demand, then profit, with optional filters and pagination.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListDeals)

	huma.Register(api, huma.Operation{
		OperationID: "export-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals/export",
		Summary:     "Export deals as CSV",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ExportDeals)
}
