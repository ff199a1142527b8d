// Package domain defines the core business types for localflipper.
package domain

import (
	"time"
)

// ConditionTag represents the normalized condition of a listed item.
type ConditionTag string

// Condition tag constants.
const (
	ConditionNew     ConditionTag = "new"
	ConditionLikeNew ConditionTag = "like_new"
	ConditionGood    ConditionTag = "good"
	ConditionFair    ConditionTag = "fair"
	ConditionPoor    ConditionTag = "poor"
	ConditionUnknown ConditionTag = "unknown"
)

// Rank orders conditions from best (5) to worst (1). Unknown ranks 0 and
// sorts below Poor.
func (c ConditionTag) Rank() int {
	switch c {
	case ConditionNew:
		return 5
	case ConditionLikeNew:
		return 4
	case ConditionGood:
		return 3
	case ConditionFair:
		return 2
	case ConditionPoor:
		return 1
	default:
		return 0
	}
}

// Known reports whether c is one of the ordered conditions.
func (c ConditionTag) Known() bool {
	return c.Rank() > 0
}

// DemandLabel is a coarse classification of how quickly an item sells.
type DemandLabel string

// Demand label constants.
const (
	DemandLow    DemandLabel = "low"
	DemandMedium DemandLabel = "medium"
	DemandHigh   DemandLabel = "high"
)

// Rank returns the ordinal position of the label (low=1, medium=2, high=3).
func (d DemandLabel) Rank() int {
	switch d {
	case DemandHigh:
		return 3
	case DemandMedium:
		return 2
	case DemandLow:
		return 1
	default:
		return 0
	}
}

// Verdict is the profitability classification of an evaluated listing.
type Verdict string

// Verdict constants.
const (
	VerdictProfitable    Verdict = "profitable"
	VerdictMarginal      Verdict = "marginal"
	VerdictNotProfitable Verdict = "not_profitable"
)

// SellerRating summarizes the trust signals found in a listing's text.
type SellerRating string

// Seller rating constants.
const (
	SellerTrusted SellerRating = "trusted"
	SellerNeutral SellerRating = "neutral"
	SellerCaution SellerRating = "caution"
)

// Location is where a listing can be picked up.
type Location struct {
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}

// HasCoordinates reports whether the location carries a usable coordinate.
func (l Location) HasCoordinates() bool {
	return l.Lat != 0 || l.Lon != 0
}

// ListingRecord is a local marketplace listing as delivered by a listing
// source. Records are validated at the source boundary and never mutated by
// the scoring engine.
type ListingRecord struct {
	SourceID      string     `json:"source_id"`
	Source        string     `json:"source"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	AskingPrice   float64    `json:"asking_price"`
	Location      Location   `json:"location"`
	DistanceMiles float64    `json:"distance_miles"`
	RawCondition  string     `json:"raw_condition,omitempty"`
	URL           string     `json:"url,omitempty"`
	PostedAt      *time.Time `json:"posted_at,omitempty"`
}

// ComparableSale is a single market transaction used as a price reference.
type ComparableSale struct {
	Price     float64      `json:"price"               minimum:"0"`
	SoldAt    time.Time    `json:"sold_at,omitzero"`
	Condition ConditionTag `json:"condition"`
}

// ComparableSaleSet is the ordered set of comparable sales for one item
// query, as supplied by a market-data source.
type ComparableSaleSet struct {
	Query string           `json:"query,omitempty"`
	AsOf  time.Time        `json:"as_of,omitzero"`
	Sales []ComparableSale `json:"sales"`
}

// Len returns the number of comparable sales in the set.
func (s ComparableSaleSet) Len() int {
	return len(s.Sales)
}

// Prices returns a copy of the sale prices in set order.
func (s ComparableSaleSet) Prices() []float64 {
	prices := make([]float64, len(s.Sales))
	for i := range s.Sales {
		prices[i] = s.Sales[i].Price
	}
	return prices
}

// EvaluationResult is the derived output of evaluating one listing.
type EvaluationResult struct {
	SourceID        string       `json:"source_id"`
	Condition       ConditionTag `json:"condition"`
	Demand          DemandLabel  `json:"demand"`
	TravelCost      float64      `json:"travel_cost"`
	FairValue       float64      `json:"fair_value"`
	BuyRangeLow     float64      `json:"buy_range_low"`
	BuyRangeHigh    float64      `json:"buy_range_high"`
	ProfitEstimate  float64      `json:"profit_estimate"`
	MarginPct       float64      `json:"margin_pct"`
	Verdict         Verdict      `json:"verdict"`
	HasMarketBasis  bool         `json:"has_market_basis"`
	ComparableCount int          `json:"comparable_count"`
	SellerRating    SellerRating `json:"seller_rating"`
	SellerFlags     []string     `json:"seller_flags,omitempty"`
}

// SavedSearch is a stored local-marketplace query that is run on a schedule.
type SavedSearch struct {
	ID         string     `json:"id"                     db:"id"`
	Name       string     `json:"name"                   db:"name"`
	Query      string     `json:"query"                  db:"query"`
	Site       string     `json:"site,omitempty"         db:"site"`
	PostalCode string     `json:"postal_code,omitempty"  db:"postal_code"`
	RadiusMi   int        `json:"radius_miles"           db:"radius_miles"`
	MaxPrice   *float64   `json:"max_price,omitempty"    db:"max_price"`
	MaxResults int        `json:"max_results"            db:"max_results"`
	Enabled    bool       `json:"enabled"                db:"enabled"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"  db:"last_run_at"`
	CreatedAt  time.Time  `json:"created_at"             db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"             db:"updated_at"`
}

// SearchRun records one execution of a saved search.
type SearchRun struct {
	ID          string     `json:"id"                     db:"id"`
	SearchID    string     `json:"search_id"              db:"search_id"`
	StartedAt   time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status      string     `json:"status"                 db:"status"`
	ErrorText   string     `json:"error_text,omitempty"   db:"error_text"`
	Listings    int        `json:"listings"               db:"listings"`
	Deals       int        `json:"deals"                  db:"deals"`
}

// Deal pairs a listing with its evaluation, as persisted and displayed.
type Deal struct {
	ID          string           `json:"id"                  db:"id"`
	SearchID    string           `json:"search_id,omitempty" db:"search_id"`
	SearchTerm  string           `json:"search_term"         db:"search_term"`
	Listing     ListingRecord    `json:"listing"`
	Evaluation  EvaluationResult `json:"evaluation"`
	EvaluatedAt time.Time        `json:"evaluated_at"        db:"evaluated_at"`
	Notified    bool             `json:"notified"            db:"notified"`
}
