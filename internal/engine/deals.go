package engine

import (
	"cmp"
	"slices"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// DealFilter drops evaluations that do not clear the profit targets.
type DealFilter struct {
	MinProfit    float64
	MinMarginPct float64
}

// Keep reports whether r clears both targets. Evaluations without a market
// basis never qualify.
func (f DealFilter) Keep(r *domain.EvaluationResult) bool {
	if !r.HasMarketBasis {
		return false
	}
	return r.ProfitEstimate >= f.MinProfit && r.MarginPct >= f.MinMarginPct
}

// SelectDeals returns the successful outcomes that pass f, ordered by
// demand (high first), then profit (highest first), then source id.
func SelectDeals(outcomes []Outcome, f DealFilter) []Outcome {
	var deals []Outcome
	for i := range outcomes {
		if outcomes[i].Err != nil || !f.Keep(&outcomes[i].Result) {
			continue
		}
		deals = append(deals, outcomes[i])
	}
	SortDeals(deals)
	return deals
}

// SortDeals orders outcomes in place by demand desc, profit desc, then
// source id asc. The order is total, so equal inputs always sort the same.
func SortDeals(deals []Outcome) {
	slices.SortStableFunc(deals, func(a, b Outcome) int {
		if c := cmp.Compare(b.Result.Demand.Rank(), a.Result.Demand.Rank()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Result.ProfitEstimate, a.Result.ProfitEstimate); c != 0 {
			return c
		}
		return cmp.Compare(a.Listing.SourceID, b.Listing.SourceID)
	})
}
