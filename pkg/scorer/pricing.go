package score

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// conditionFactors is the share of a new item's value each condition
// retains. Unknown is priced as poor.
var conditionFactors = map[domain.ConditionTag]float64{
	domain.ConditionNew:     1.00,
	domain.ConditionLikeNew: 0.92,
	domain.ConditionGood:    0.82,
	domain.ConditionFair:    0.65,
	domain.ConditionPoor:    0.40,
	domain.ConditionUnknown: 0.40,
}

// demandMultipliers discounts fair value for items that sell slowly.
var demandMultipliers = map[domain.DemandLabel]float64{
	domain.DemandHigh:   1.00,
	domain.DemandMedium: 0.90,
	domain.DemandLow:    0.75,
}

// ConditionFactor returns the value factor for a condition tag.
func ConditionFactor(c domain.ConditionTag) float64 {
	if f, ok := conditionFactors[c]; ok {
		return f
	}
	return conditionFactors[domain.ConditionUnknown]
}

// DemandMultiplier returns the fair value multiplier for a demand label.
func DemandMultiplier(d domain.DemandLabel) float64 {
	if m, ok := demandMultipliers[d]; ok {
		return m
	}
	return demandMultipliers[domain.DemandLow]
}

// PricingParams holds the tunables of the pricing recommender.
type PricingParams struct {
	// MinMargin is the profit, in dollars, a purchase must clear to be
	// profitable. It is also the gap kept between fair value and the top of
	// the buy range.
	MinMargin float64 `json:"min_margin" yaml:"min_margin"`
	// LowFraction is how far below the top of the buy range the bottom sits.
	LowFraction float64 `json:"low_fraction" yaml:"low_fraction"`
	// TrimFraction is the share of prices dropped from each end before
	// averaging.
	TrimFraction float64 `json:"trim_fraction" yaml:"trim_fraction"`
}

// DefaultPricingParams returns a $20 minimum margin, a buy range 25% deep
// and a 10% trimmed mean.
func DefaultPricingParams() PricingParams {
	return PricingParams{
		MinMargin:    20,
		LowFraction:  0.25,
		TrimFraction: 0.10,
	}
}

// Validate checks that the pricing parameters are usable.
func (p PricingParams) Validate() error {
	if !finite(p.MinMargin) || p.MinMargin < 0 {
		return fmt.Errorf("%w: min margin must be >= 0 (got %v)", ErrInvalidParameter, p.MinMargin)
	}
	if !finite(p.LowFraction) || p.LowFraction < 0 || p.LowFraction > 1 {
		return fmt.Errorf("%w: low fraction must be in [0, 1] (got %v)", ErrInvalidParameter, p.LowFraction)
	}
	if !finite(p.TrimFraction) || p.TrimFraction < 0 || p.TrimFraction >= 0.5 {
		return fmt.Errorf(
			"%w: trim fraction must be in [0, 0.5) (got %v)",
			ErrInvalidParameter,
			p.TrimFraction,
		)
	}
	return nil
}

// PriceStats summarizes the comparable sale prices.
type PriceStats struct {
	Count       int     `json:"count"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	TrimmedMean float64 `json:"trimmed_mean"`
	P25         float64 `json:"p25"`
	P50         float64 `json:"p50"`
	P75         float64 `json:"p75"`
}

// ComputePriceStats sorts a copy of prices and computes summary statistics.
// trim is the fraction dropped from each end for TrimmedMean. Returns the
// zero value for an empty slice.
func ComputePriceStats(prices []float64, trim float64) PriceStats {
	n := len(prices)
	if n == 0 {
		return PriceStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, prices)
	sort.Float64s(sorted)

	k := int(math.Floor(float64(n) * trim))
	if 2*k >= n {
		k = (n - 1) / 2
	}

	return PriceStats{
		Count:       n,
		Min:         sorted[0],
		Max:         sorted[n-1],
		Mean:        stat.Mean(sorted, nil),
		TrimmedMean: stat.Mean(sorted[k:n-k], nil),
		P25:         stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P50:         stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P75:         stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}

// BaselineCondition returns the most common known condition among the
// comparables, preferring the better condition on ties. When no sale carries
// a known condition the baseline is good.
func BaselineCondition(comps domain.ComparableSaleSet) domain.ConditionTag {
	counts := make(map[domain.ConditionTag]int)
	for i := range comps.Sales {
		if c := comps.Sales[i].Condition; c.Known() {
			counts[c]++
		}
	}

	best := domain.ConditionGood
	bestCount := 0
	for _, c := range []domain.ConditionTag{
		domain.ConditionNew,
		domain.ConditionLikeNew,
		domain.ConditionGood,
		domain.ConditionFair,
		domain.ConditionPoor,
	} {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

// ConditionAdjustment returns the multiplier applied to the market basis for
// a listing in condition c when the comparables are mostly in baseline
// condition. It never exceeds 1.
func ConditionAdjustment(c, baseline domain.ConditionTag) float64 {
	if c.Rank() >= baseline.Rank() {
		return 1
	}
	return ConditionFactor(c) / ConditionFactor(baseline)
}

// Recommendation is the pricing recommender's output. Currency fields are
// rounded to cents.
type Recommendation struct {
	FairValue      float64             `json:"fair_value"`
	BuyLow         float64             `json:"buy_low"`
	BuyHigh        float64             `json:"buy_high"`
	Profit         float64             `json:"profit"`
	MarginPct      float64             `json:"margin_pct"`
	Verdict        domain.Verdict      `json:"verdict"`
	HasMarketBasis bool                `json:"has_market_basis"`
	Baseline       domain.ConditionTag `json:"baseline_condition"`
	Stats          PriceStats          `json:"stats"`
}

// Recommend derives fair value, a buy range, the expected profit and a
// verdict for a listing. Every comparable price must be finite and >= 0.
// The verdict is decided on the rounded figures it reports, so a profit
// shown as exactly MinMargin is never profitable.
//
// With no comparables there is no market basis: fair value and profit are
// zero, the buy range is [0, askingPrice] and the verdict is not profitable.
func Recommend(
	comps domain.ComparableSaleSet,
	condition domain.ConditionTag,
	demand domain.DemandLabel,
	travelCost float64,
	askingPrice float64,
	p PricingParams,
) (Recommendation, error) {
	if !finite(askingPrice) || askingPrice < 0 {
		return Recommendation{}, fmt.Errorf(
			"%w: asking price must be >= 0 (got %v)",
			ErrInvalidParameter,
			askingPrice,
		)
	}
	if !finite(travelCost) || travelCost < 0 {
		return Recommendation{}, fmt.Errorf(
			"%w: travel cost must be >= 0 (got %v)",
			ErrInvalidParameter,
			travelCost,
		)
	}
	if err := p.Validate(); err != nil {
		return Recommendation{}, err
	}
	for i, sale := range comps.Sales {
		if !finite(sale.Price) || sale.Price < 0 {
			return Recommendation{}, fmt.Errorf(
				"%w: comparable sale %d price must be >= 0 (got %v)",
				ErrInvalidParameter,
				i,
				sale.Price,
			)
		}
	}

	if comps.Len() == 0 {
		return Recommendation{
			BuyHigh:  roundCents(askingPrice),
			Verdict:  domain.VerdictNotProfitable,
			Baseline: domain.ConditionGood,
		}, nil
	}

	stats := ComputePriceStats(comps.Prices(), p.TrimFraction)
	baseline := BaselineCondition(comps)

	fair := stats.TrimmedMean *
		ConditionAdjustment(condition, baseline) *
		DemandMultiplier(demand)

	buyHigh := math.Max(0, fair-travelCost-p.MinMargin)
	buyLow := math.Min(buyHigh, math.Max(0, buyHigh*(1-p.LowFraction)))

	profit := fair - askingPrice - travelCost
	var marginPct float64
	if askingPrice > 0 {
		marginPct = profit / askingPrice * 100
	}

	rec := Recommendation{
		FairValue: roundCents(fair),
		BuyLow:    roundCents(buyLow),
		BuyHigh:   roundCents(buyHigh),
		Profit:    roundCents(profit),
		MarginPct: roundCents(marginPct),
	}

	rec.Verdict = domain.VerdictNotProfitable
	switch {
	case askingPrice <= rec.BuyHigh && rec.Profit > p.MinMargin:
		rec.Verdict = domain.VerdictProfitable
	case rec.Profit > 0:
		rec.Verdict = domain.VerdictMarginal
	}

	rec.HasMarketBasis = true
	rec.Baseline = baseline
	rec.Stats = stats
	return rec, nil
}
