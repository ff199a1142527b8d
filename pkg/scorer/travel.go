package score

import (
	"fmt"
	"math"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const earthRadiusMiles = 3958.8

// EstimateTravelCost returns the fuel cost of a round trip of distanceMiles
// each way: (2 * distance / mpg) * fuelPrice, rounded to cents.
//
// distanceMiles and fuelPricePerGallon must be >= 0 and mpg must be > 0;
// anything else (including NaN and Inf) fails with ErrInvalidParameter.
func EstimateTravelCost(distanceMiles, fuelPricePerGallon, mpg float64) (float64, error) {
	if !finite(distanceMiles) || distanceMiles < 0 {
		return 0, fmt.Errorf("%w: distance must be >= 0 (got %v)", ErrInvalidParameter, distanceMiles)
	}
	if !finite(fuelPricePerGallon) || fuelPricePerGallon < 0 {
		return 0, fmt.Errorf(
			"%w: fuel price must be >= 0 (got %v)",
			ErrInvalidParameter,
			fuelPricePerGallon,
		)
	}
	if !finite(mpg) || mpg <= 0 {
		return 0, fmt.Errorf("%w: mpg must be > 0 (got %v)", ErrInvalidParameter, mpg)
	}

	gallons := 2 * distanceMiles / mpg
	return roundCents(gallons * fuelPricePerGallon), nil
}

// HaversineMiles returns the great-circle distance between two coordinates.
func HaversineMiles(a, b domain.Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}
