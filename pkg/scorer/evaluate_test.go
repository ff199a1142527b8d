package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func xboxListing() *domain.ListingRecord {
	return &domain.ListingRecord{
		SourceID:      "cl-7781",
		Source:        "craigslist",
		Title:         "Xbox Series X",
		Description:   "Comes with one controller.",
		AskingPrice:   120,
		DistanceMiles: 15.5,
		RawCondition:  "Like new, barely used",
	}
}

var testFuel = FuelParams{PricePerGallon: 4, MPG: 20}

func TestEvaluate_ProfitableDeal(t *testing.T) {
	t.Parallel()

	listing := xboxListing()
	res, err := Evaluate(listing, consoleComps(), 0, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, "cl-7781", res.SourceID)
	assert.Equal(t, domain.ConditionLikeNew, res.Condition)
	assert.Equal(t, domain.DemandHigh, res.Demand)
	assert.InDelta(t, 6.20, res.TravelCost, 0.001)
	assert.InDelta(t, 185.00, res.FairValue, 0.001)
	assert.Equal(t, domain.VerdictProfitable, res.Verdict)
	assert.Less(t, listing.AskingPrice, res.BuyRangeHigh)
	assert.Positive(t, res.ProfitEstimate)
	assert.GreaterOrEqual(t, res.BuyRangeHigh, 150.0)
	assert.LessOrEqual(t, res.BuyRangeHigh, 170.0)
	assert.LessOrEqual(t, res.BuyRangeLow, res.BuyRangeHigh)
	assert.True(t, res.HasMarketBasis)
	assert.Equal(t, 10, res.ComparableCount)
	assert.Equal(t, domain.SellerNeutral, res.SellerRating)
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	listing := xboxListing()
	comps := consoleComps()

	first, err := Evaluate(listing, comps, 2, testFuel, DefaultParams())
	require.NoError(t, err)
	second, err := Evaluate(listing, comps, 2, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	listing := xboxListing()
	before := *listing
	comps := consoleComps()
	pricesBefore := comps.Prices()

	_, err := Evaluate(listing, comps, 1, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, before, *listing)
	assert.Equal(t, pricesBefore, comps.Prices())
}

func TestEvaluate_UnknownConditionPricedAsPoor(t *testing.T) {
	t.Parallel()

	listing := xboxListing()
	listing.RawCondition = ""
	listing.Description = ""

	res, err := Evaluate(listing, consoleComps(), 0, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.ConditionUnknown, res.Condition)
	assert.InDelta(t, 185*0.40/0.92, res.FairValue, 0.01)
	assert.Equal(t, domain.VerdictNotProfitable, res.Verdict)
}

func TestEvaluate_NoComparables(t *testing.T) {
	t.Parallel()

	res, err := Evaluate(xboxListing(), domain.ComparableSaleSet{}, 0, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.False(t, res.HasMarketBasis)
	assert.Equal(t, domain.DemandLow, res.Demand)
	assert.Zero(t, res.FairValue)
	assert.InDelta(t, 120.0, res.BuyRangeHigh, 0.001)
	assert.Equal(t, domain.VerdictNotProfitable, res.Verdict)
}

func TestEvaluate_SellerRating(t *testing.T) {
	t.Parallel()

	listing := xboxListing()
	listing.Description = "Have the receipt and original box."

	res, err := Evaluate(listing, consoleComps(), 0, testFuel, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.SellerTrusted, res.SellerRating)
	assert.Equal(t, []string{"+receipt", "+original box"}, res.SellerFlags)
}

func TestEvaluate_InvalidParameter(t *testing.T) {
	t.Parallel()

	t.Run("nil listing", func(t *testing.T) {
		t.Parallel()

		_, err := Evaluate(nil, consoleComps(), 0, testFuel, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("negative asking price", func(t *testing.T) {
		t.Parallel()

		listing := xboxListing()
		listing.AskingPrice = -5

		_, err := Evaluate(listing, consoleComps(), 0, testFuel, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidParameter)

		_, direct := Recommend(
			consoleComps(),
			domain.ConditionLikeNew,
			domain.DemandHigh,
			6.20,
			-5,
			DefaultPricingParams(),
		)
		assert.Equal(t, direct.Error(), err.Error(), "error is returned without extra wrapping")
	})

	t.Run("negative distance", func(t *testing.T) {
		t.Parallel()

		listing := xboxListing()
		listing.DistanceMiles = -1

		_, err := Evaluate(listing, consoleComps(), 0, testFuel, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidParameter)

		_, direct := EstimateTravelCost(-1, testFuel.PricePerGallon, testFuel.MPG)
		assert.Equal(t, direct.Error(), err.Error())
	})

	t.Run("zero mpg", func(t *testing.T) {
		t.Parallel()

		_, err := Evaluate(xboxListing(), consoleComps(), 0, FuelParams{PricePerGallon: 4}, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("malformed comparable price", func(t *testing.T) {
		t.Parallel()

		for _, price := range []float64{math.NaN(), -900} {
			comps := consoleComps()
			comps.Sales[1].Price = price

			res, err := Evaluate(xboxListing(), comps, 5, testFuel, DefaultParams())
			require.ErrorIs(t, err, ErrInvalidParameter, "price %v", price)
			assert.Contains(t, err.Error(), "comparable sale 1 price")
			assert.Zero(t, res)
		}
	})

	t.Run("negative supply", func(t *testing.T) {
		t.Parallel()

		_, err := Evaluate(xboxListing(), consoleComps(), -3, testFuel, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}
