package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// RawListing is a listing as delivered by the scraper feed, before
// validation. Prices may arrive as JSON numbers or as display strings
// ("$1,200", "450 obo").
type RawListing struct {
	ID            string     `json:"id"`
	Source        string     `json:"source"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Price         RawPrice   `json:"price"`
	Condition     string     `json:"condition"`
	URL           string     `json:"url"`
	Address       string     `json:"address"`
	Lat           *float64   `json:"lat"`
	Lon           *float64   `json:"lon"`
	DistanceMiles *float64   `json:"distance_miles"`
	PostedAt      *time.Time `json:"posted_at"`
}

// RawPrice holds the textual form of a price as found in the feed.
type RawPrice string

// UnmarshalJSON accepts a JSON string, number or null.
func (p *RawPrice) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decoding price: %w", err)
		}
		*p = RawPrice(s)
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("decoding price %s: %w", b, err)
		}
		*p = RawPrice(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}
