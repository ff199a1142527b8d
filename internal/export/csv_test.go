package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/export"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func sampleDeal() domain.Deal {
	return domain.Deal{
		SearchTerm: "xbox series x",
		Listing: domain.ListingRecord{
			SourceID:      "cl-1",
			Source:        "craigslist",
			Title:         "Xbox Series X, like new",
			AskingPrice:   120,
			Location:      domain.Location{Address: "Redding, CA"},
			DistanceMiles: 15.5,
			URL:           "https://example.org/cl-1",
		},
		Evaluation: domain.EvaluationResult{
			Condition:       domain.ConditionLikeNew,
			Demand:          domain.DemandHigh,
			TravelCost:      6.34,
			FairValue:       185,
			BuyRangeLow:     119,
			BuyRangeHigh:    158.66,
			ProfitEstimate:  58.66,
			MarginPct:       48.88,
			Verdict:         domain.VerdictProfitable,
			ComparableCount: 10,
			SellerRating:    domain.SellerNeutral,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, []domain.Deal{sampleDeal()}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, export.Header, records[0])

	row := map[string]string{}
	for i, h := range records[0] {
		row[h] = records[1][i]
	}

	assert.Equal(t, "xbox series x", row["Search"])
	assert.Equal(t, "Xbox Series X, like new", row["Title"])
	assert.Equal(t, "Redding, CA", row["Location"])
	assert.Equal(t, "120.00", row["Asking Price"])
	assert.Equal(t, "58.66", row["Profit"])
	assert.Equal(t, "48.9", row["Margin %"])
	assert.Equal(t, "119.00", row["Buy Low"])
	assert.Equal(t, "like_new", row["Condition"])
	assert.Equal(t, "15.5", row["Distance (mi)"])
	assert.Equal(t, "high", row["Demand"])
	assert.Equal(t, "10", row["Comparables"])
	assert.Equal(t,
		"https://www.ebay.com/sch/i.html?_nkw=Xbox+Series+X%2C+like+new",
		row["eBay Search"],
	)
}

func TestWriteCSV_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "localflipper_deals_20260301_090507.csv", export.Filename("", now))
	assert.Equal(t, "localflipper_raw_20260301_090507.csv", export.Filename("raw", now))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	path, err := export.WriteFile(dir, "deals", now, []domain.Deal{sampleDeal()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "localflipper_deals_20260301_120000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Xbox Series X")
}
