// Package notify defines the notification interface and implementations
// for deal alert delivery.
package notify

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// AlertPayload contains the data needed to send a deal alert notification.
type AlertPayload struct {
	SearchName    string
	Title         string
	URL           string
	Source        string
	AskingPrice   float64
	FairValue     float64
	Profit        float64
	MarginPct     float64
	BuyRangeLow   float64
	BuyRangeHigh  float64
	TravelCost    float64
	DistanceMiles float64
	Condition     domain.ConditionTag
	Demand        domain.DemandLabel
	Verdict       domain.Verdict
	SellerRating  domain.SellerRating
}

// PayloadFromDeal builds an alert payload from a stored deal.
func PayloadFromDeal(d *domain.Deal) AlertPayload {
	return AlertPayload{
		SearchName:    d.SearchTerm,
		Title:         d.Listing.Title,
		URL:           d.Listing.URL,
		Source:        d.Listing.Source,
		AskingPrice:   d.Listing.AskingPrice,
		FairValue:     d.Evaluation.FairValue,
		Profit:        d.Evaluation.ProfitEstimate,
		MarginPct:     d.Evaluation.MarginPct,
		BuyRangeLow:   d.Evaluation.BuyRangeLow,
		BuyRangeHigh:  d.Evaluation.BuyRangeHigh,
		TravelCost:    d.Evaluation.TravelCost,
		DistanceMiles: d.Listing.DistanceMiles,
		Condition:     d.Evaluation.Condition,
		Demand:        d.Evaluation.Demand,
		Verdict:       d.Evaluation.Verdict,
		SellerRating:  d.Evaluation.SellerRating,
	}
}

// Notifier defines the interface for sending deal alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, searchName string) error
}

func dollars(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
