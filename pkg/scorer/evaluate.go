package score

import (
	"fmt"

	"github.com/donaldgifford/localflipper/pkg/extract"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Evaluate runs the full pipeline for one listing: condition, travel cost,
// demand and pricing, in that order. The listing and comparables are read
// only. Errors from a stage are returned as-is so callers can match them
// with errors.Is(err, ErrInvalidParameter).
func Evaluate(
	listing *domain.ListingRecord,
	comps domain.ComparableSaleSet,
	localSupply int,
	fuel FuelParams,
	p Params,
) (domain.EvaluationResult, error) {
	if listing == nil {
		return domain.EvaluationResult{}, fmt.Errorf("%w: listing is nil", ErrInvalidParameter)
	}

	condition := extract.NormalizeListingCondition(listing)

	travel, err := EstimateTravelCost(listing.DistanceMiles, fuel.PricePerGallon, fuel.MPG)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	demand, err := ScoreDemand(comps, localSupply, p.Demand)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	rec, err := Recommend(comps, condition, demand, travel, listing.AskingPrice, p.Pricing)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	rating, flags := extract.RateSeller(listing.Title, listing.Description)

	return domain.EvaluationResult{
		SourceID:        listing.SourceID,
		Condition:       condition,
		Demand:          demand,
		TravelCost:      travel,
		FairValue:       rec.FairValue,
		BuyRangeLow:     rec.BuyLow,
		BuyRangeHigh:    rec.BuyHigh,
		ProfitEstimate:  rec.Profit,
		MarginPct:       rec.MarginPct,
		Verdict:         rec.Verdict,
		HasMarketBasis:  rec.HasMarketBasis,
		ComparableCount: comps.Len(),
		SellerRating:    rating,
		SellerFlags:     flags,
	}, nil
}
