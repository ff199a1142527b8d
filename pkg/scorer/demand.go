package score

import (
	"fmt"
	"time"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// DemandThresholds controls how sales pressure maps to a DemandLabel.
// Pressure is recent sales / (1 + local supply).
type DemandThresholds struct {
	Window   time.Duration `json:"window"    yaml:"window"`
	MediumAt float64       `json:"medium_at" yaml:"medium_at"`
	HighAt   float64       `json:"high_at"   yaml:"high_at"`
}

// DefaultDemandThresholds returns a 30 day window, medium at a pressure of
// 1.0 and high at 3.0.
func DefaultDemandThresholds() DemandThresholds {
	return DemandThresholds{
		Window:   30 * 24 * time.Hour,
		MediumAt: 1.0,
		HighAt:   3.0,
	}
}

// Validate checks that the thresholds are usable.
func (t DemandThresholds) Validate() error {
	if t.Window <= 0 {
		return fmt.Errorf("%w: demand window must be > 0 (got %s)", ErrInvalidParameter, t.Window)
	}
	if !finite(t.MediumAt) || t.MediumAt <= 0 {
		return fmt.Errorf("%w: medium threshold must be > 0 (got %v)", ErrInvalidParameter, t.MediumAt)
	}
	if !finite(t.HighAt) || t.HighAt < t.MediumAt {
		return fmt.Errorf(
			"%w: high threshold must be >= medium threshold (got %v < %v)",
			ErrInvalidParameter, t.HighAt, t.MediumAt,
		)
	}
	return nil
}

// RecentSales counts sales that fall inside the window ending at AsOf.
// Undated sales count as recent. With no AsOf there is no window to anchor
// and every sale counts, so adding a sale never lowers the count.
func RecentSales(comps domain.ComparableSaleSet, window time.Duration) int {
	if comps.AsOf.IsZero() {
		return comps.Len()
	}

	cutoff := comps.AsOf.Add(-window)
	n := 0
	for i := range comps.Sales {
		soldAt := comps.Sales[i].SoldAt
		if soldAt.IsZero() || !soldAt.Before(cutoff) {
			n++
		}
	}
	return n
}

// Pressure returns recent sales per competing local listing.
func Pressure(recent, localSupply int) float64 {
	return float64(recent) / float64(1+localSupply)
}

// ScoreDemand classifies how quickly an item sells. It rises with the
// number of recent comparable sales and falls with the number of competing
// local listings. An empty comparable set is always low demand.
func ScoreDemand(
	comps domain.ComparableSaleSet,
	localSupply int,
	t DemandThresholds,
) (domain.DemandLabel, error) {
	if localSupply < 0 {
		return "", fmt.Errorf("%w: local supply must be >= 0 (got %d)", ErrInvalidParameter, localSupply)
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	if comps.Len() == 0 {
		return domain.DemandLow, nil
	}

	p := Pressure(RecentSales(comps, t.Window), localSupply)
	switch {
	case p >= t.HighAt:
		return domain.DemandHigh, nil
	case p >= t.MediumAt:
		return domain.DemandMedium, nil
	default:
		return domain.DemandLow, nil
	}
}
