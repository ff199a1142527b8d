// Package export writes deals as CSV for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const ebaySearchBase = "https://www.ebay.com/sch/i.html"

// Header is the first CSV row.
var Header = []string{
	"Search",
	"Source",
	"Title",
	"Location",
	"Asking Price",
	"Fair Value",
	"Profit",
	"Margin %",
	"Buy Low",
	"Buy High",
	"Condition",
	"Seller Rating",
	"Travel Cost",
	"Distance (mi)",
	"Demand",
	"Verdict",
	"Comparables",
	"Listing Link",
	"eBay Search",
}

// Row renders one deal in Header order.
func Row(d *domain.Deal) []string {
	ev := &d.Evaluation
	return []string{
		d.SearchTerm,
		d.Listing.Source,
		d.Listing.Title,
		d.Listing.Location.Address,
		money(d.Listing.AskingPrice),
		money(ev.FairValue),
		money(ev.ProfitEstimate),
		strconv.FormatFloat(ev.MarginPct, 'f', 1, 64),
		money(ev.BuyRangeLow),
		money(ev.BuyRangeHigh),
		string(ev.Condition),
		string(ev.SellerRating),
		money(ev.TravelCost),
		strconv.FormatFloat(d.Listing.DistanceMiles, 'f', 1, 64),
		string(ev.Demand),
		string(ev.Verdict),
		strconv.Itoa(ev.ComparableCount),
		d.Listing.URL,
		EbaySearchURL(d.Listing.Title),
	}
}

// WriteCSV writes a header row followed by one row per deal.
func WriteCSV(w io.Writer, deals []domain.Deal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i := range deals {
		if err := cw.Write(Row(&deals[i])); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Filename returns a timestamped export name such as
// localflipper_deals_20260301_120000.csv.
func Filename(mode string, now time.Time) string {
	if mode == "" {
		mode = "deals"
	}
	return fmt.Sprintf("localflipper_%s_%s.csv", mode, now.Format("20060102_150405"))
}

// WriteFile writes deals to a new timestamped file under dir, creating dir
// if needed, and returns the file path.
func WriteFile(dir, mode string, now time.Time, deals []domain.Deal) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(mode, now))
	f, err := os.Create(path) //nolint:gosec // path built from operator-supplied dir
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteCSV(f, deals); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

// EbaySearchURL links to an eBay keyword search for title.
func EbaySearchURL(title string) string {
	return ebaySearchBase + "?" + url.Values{"_nkw": {title}}.Encode()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
