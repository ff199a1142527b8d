// Package score implements the demand and pricing engine: travel cost,
// demand classification, buy-price recommendation and the per-listing
// evaluation that composes them. Every function is pure; configuration is
// passed in explicitly.
package score

import (
	"errors"
	"math"
)

// ErrInvalidParameter is returned when an input violates a documented
// constraint (negative price, negative distance, non-positive mpg, negative
// supply count). It signals a data or configuration error, never a
// transient one.
var ErrInvalidParameter = errors.New("invalid parameter")

// FuelParams describes the vehicle used to pick up a listing.
type FuelParams struct {
	PricePerGallon float64 `json:"price_per_gallon" yaml:"price_per_gallon"`
	MPG            float64 `json:"mpg"              yaml:"mpg"`
}

// DefaultFuelParams returns a typical passenger car at a typical fuel price.
func DefaultFuelParams() FuelParams {
	return FuelParams{
		PricePerGallon: 4.50,
		MPG:            22,
	}
}

// Params bundles the tunables for one evaluation.
type Params struct {
	Demand  DemandThresholds
	Pricing PricingParams
}

// DefaultParams returns the documented default thresholds.
func DefaultParams() Params {
	return Params{
		Demand:  DefaultDemandThresholds(),
		Pricing: DefaultPricingParams(),
	}
}

// roundCents rounds a currency amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
