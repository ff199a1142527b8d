package handlers_test

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/api/handlers"
	"github.com/donaldgifford/localflipper/internal/export"
	"github.com/donaldgifford/localflipper/internal/store"
	storeMocks "github.com/donaldgifford/localflipper/internal/store/mocks"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func storedDeal(id string, profit float64) domain.Deal {
	return domain.Deal{
		ID:         id,
		SearchID:   "s1",
		SearchTerm: "xbox series x",
		Listing: domain.ListingRecord{
			SourceID:    "cl-" + id,
			Source:      "craigslist",
			Title:       "Xbox " + id,
			AskingPrice: 120,
		},
		Evaluation: domain.EvaluationResult{
			Demand:         domain.DemandHigh,
			ProfitEstimate: profit,
			Verdict:        domain.VerdictProfitable,
			HasMarketBasis: true,
		},
		EvaluatedAt: evalNow,
	}
}

func TestDealsHandler_ListDeals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		match      func(*store.DealQuery) bool
		deals      []domain.Deal
		total      int
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "no filters",
			path: "/api/v1/deals",
			match: func(q *store.DealQuery) bool {
				return q.SearchID == nil && q.Verdict == nil && q.MinProfit == nil && q.Limit == 0
			},
			deals:      []domain.Deal{storedDeal("a", 60)},
			total:      1,
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "all filters",
			path: "/api/v1/deals?search_id=s1&verdict=profitable&min_profit=25&limit=10&offset=20&order_by=profit",
			match: func(q *store.DealQuery) bool {
				return q.SearchID != nil && *q.SearchID == "s1" &&
					q.Verdict != nil && *q.Verdict == "profitable" &&
					q.MinProfit != nil && *q.MinProfit == 25 &&
					q.Limit == 10 && q.Offset == 20 && q.OrderBy == "profit"
			},
			wantStatus: http.StatusOK,
			wantBody:   `"deals":[]`,
		},
		{
			name:       "store error",
			path:       "/api/v1/deals",
			match:      func(*store.DealQuery) bool { return true },
			err:        errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "deal query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListDeals(mock.Anything, mock.MatchedBy(tt.match)).
				Return(tt.deals, tt.total, tt.err).Once()

			_, api := humatest.New(t)
			handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestDealsHandler_ListDeals_BadVerdict(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(storeMocks.NewMockStore(t)))

	resp := api.Get("/api/v1/deals?verdict=amazing")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestDealsHandler_ExportDeals(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListDeals(mock.Anything, mock.MatchedBy(func(q *store.DealQuery) bool {
		return q.Limit == 500 && q.Verdict != nil && *q.Verdict == "profitable"
	})).Return([]domain.Deal{storedDeal("a", 60), storedDeal("b", 40)}, 2, nil).Once()

	_, api := humatest.New(t)
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(ms))

	resp := api.Get("/api/v1/deals/export?verdict=profitable")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "localflipper_deals_")

	records, err := csv.NewReader(strings.NewReader(resp.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, export.Header, records[0])
	assert.Equal(t, "Xbox a", records[1][2])
}

func TestDealsHandler_ExportDeals_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListDeals(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db error")).Once()

	_, api := humatest.New(t)
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(ms))

	resp := api.Get("/api/v1/deals/export")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
