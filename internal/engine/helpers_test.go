package engine

import (
	"log/slog"
	"time"

	"github.com/donaldgifford/localflipper/pkg/logger"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return logger.Discard()
}

// consoleComps returns ten like-new sales from the last ten days averaging $185.
func consoleComps() domain.ComparableSaleSet {
	prices := []float64{205, 165, 190, 175, 185, 200, 170, 185, 195, 180}
	set := domain.ComparableSaleSet{Query: "xbox series x", AsOf: testNow}
	for i, p := range prices {
		set.Sales = append(set.Sales, domain.ComparableSale{
			Price:     p,
			SoldAt:    testNow.Add(-time.Duration(i) * 24 * time.Hour),
			Condition: domain.ConditionLikeNew,
		})
	}
	return set
}

func listing(id, title string, price float64) domain.ListingRecord {
	return domain.ListingRecord{
		SourceID:      id,
		Source:        "craigslist",
		Title:         title,
		AskingPrice:   price,
		DistanceMiles: 15.5,
		RawCondition:  "like new",
	}
}
