package source

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/donaldgifford/localflipper/internal/metrics"
	"github.com/donaldgifford/localflipper/pkg/extract"
	"github.com/donaldgifford/localflipper/pkg/logger"
	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Rejection reasons, used as the metrics label and in logs.
const (
	ReasonMissingID    = "missing_id"
	ReasonMissingTitle = "missing_title"
	ReasonNoPrice      = "no_price"
	ReasonBadPrice     = "bad_price"
	ReasonNoLocation   = "no_location"
	ReasonBadDistance  = "bad_distance"
	ReasonDuplicate    = "duplicate"
)

// Rejection records why a raw listing was dropped.
type Rejection struct {
	SourceID string
	Reason   string
}

// Validator turns raw feed records into ListingRecords. Records with a
// missing title, a missing or negative price, or no way to work out the
// distance are rejected rather than defaulted.
type Validator struct {
	home domain.Location
	log  *slog.Logger
}

// NewValidator creates a Validator that measures distances from home.
// A home without coordinates means only feed-supplied distances are used.
func NewValidator(home domain.Location, l ...*slog.Logger) *Validator {
	var base *slog.Logger
	if len(l) > 0 {
		base = l[0]
	}
	return &Validator{home: home, log: logger.Component(base, "source")}
}

// Validate cleans and checks raw records, in order. Duplicates by source
// id or URL keep the first occurrence.
func (v *Validator) Validate(raw []RawListing) ([]domain.ListingRecord, []Rejection) {
	seenIDs := make(map[string]bool, len(raw))
	seenURLs := make(map[string]bool, len(raw))

	out := make([]domain.ListingRecord, 0, len(raw))
	var rejected []Rejection

	for i := range raw {
		rec, reason := v.convert(&raw[i])
		if reason == "" {
			idKey := rec.Source + "/" + rec.SourceID
			switch {
			case seenIDs[idKey], rec.URL != "" && seenURLs[rec.URL]:
				reason = ReasonDuplicate
			default:
				seenIDs[idKey] = true
				if rec.URL != "" {
					seenURLs[rec.URL] = true
				}
			}
		}

		if reason != "" {
			rejected = append(rejected, Rejection{SourceID: strings.TrimSpace(raw[i].ID), Reason: reason})
			metrics.ListingsRejectedTotal.WithLabelValues(reason).Inc()
			v.log.Debug("rejected listing", "id", raw[i].ID, "reason", reason)
			continue
		}
		out = append(out, rec)
	}

	return out, rejected
}

func (v *Validator) convert(r *RawListing) (domain.ListingRecord, string) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return domain.ListingRecord{}, ReasonMissingID
	}

	title := extract.CleanSellerText(r.Title)
	if title == "" {
		return domain.ListingRecord{}, ReasonMissingTitle
	}

	rawPrice := strings.TrimSpace(string(r.Price))
	if strings.HasPrefix(rawPrice, "-") {
		return domain.ListingRecord{}, ReasonBadPrice
	}
	price, err := extract.ParsePrice(rawPrice)
	switch {
	case errors.Is(err, extract.ErrNoPrice):
		return domain.ListingRecord{}, ReasonNoPrice
	case err != nil, price < 0, math.IsNaN(price), math.IsInf(price, 0):
		return domain.ListingRecord{}, ReasonBadPrice
	}

	loc := domain.Location{Address: strings.TrimSpace(r.Address)}
	if r.Lat != nil && r.Lon != nil {
		loc.Lat, loc.Lon = *r.Lat, *r.Lon
	}

	distance, reason := v.distance(r, loc)
	if reason != "" {
		return domain.ListingRecord{}, reason
	}

	src := strings.ToLower(strings.TrimSpace(r.Source))
	if src == "" {
		src = "feed"
	}

	return domain.ListingRecord{
		SourceID:      id,
		Source:        src,
		Title:         title,
		Description:   extract.CleanSellerText(r.Description),
		AskingPrice:   price,
		Location:      loc,
		DistanceMiles: distance,
		RawCondition:  strings.TrimSpace(r.Condition),
		URL:           strings.TrimSpace(r.URL),
		PostedAt:      r.PostedAt,
	}, ""
}

// distance prefers a great-circle distance from home when both ends have
// coordinates, and falls back to the feed's own figure.
func (v *Validator) distance(r *RawListing, loc domain.Location) (float64, string) {
	if v.home.HasCoordinates() && loc.HasCoordinates() {
		return math.Round(score.HaversineMiles(v.home, loc)*10) / 10, ""
	}
	if r.DistanceMiles == nil {
		return 0, ReasonNoLocation
	}
	d := *r.DistanceMiles
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ReasonBadDistance
	}
	return d, ""
}
