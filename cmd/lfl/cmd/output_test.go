package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func TestPrintDealsTable(t *testing.T) {
	t.Parallel()

	deals := []domain.Deal{{
		Listing: domain.ListingRecord{Title: "xbox series x 1tb", AskingPrice: 250, DistanceMiles: 12.34},
		Evaluation: domain.EvaluationResult{
			FairValue:      380,
			ProfitEstimate: 121.5,
			MarginPct:      31.9,
			Demand:         domain.DemandHigh,
			Verdict:        domain.VerdictProfitable,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, printDealsTable(&buf, deals))

	out := buf.String()
	assert.Contains(t, out, "xbox series x 1tb")
	assert.Contains(t, out, "$121.50")
	assert.Contains(t, out, "32%")
	assert.Contains(t, out, "profitable")
	assert.Contains(t, out, "12.3")
}

func TestPrintSearchTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printSearchTable(&buf, []domain.SavedSearch{
		{ID: "s1", Name: "consoles", Query: "ps5", RadiusMi: 40, Enabled: true},
	}))

	out := buf.String()
	assert.Contains(t, out, "consoles")
	assert.Contains(t, out, "40")
	assert.Contains(t, out, "true")
}

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$12.50", money(12.5))
	assert.Equal(t, "-$3.00", money(-3))
	assert.Equal(t, "$0.00", money(0))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ñññ...", truncate("ññññññññ", 6))
}
