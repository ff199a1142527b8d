package source

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/pkg/logger"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func ptr(f float64) *float64 { return &f }

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	raw := []RawListing{
		{ID: "a", Title: "Xbox", Price: "$120", DistanceMiles: ptr(10)},
		{ID: "", Title: "No id", Price: "10", DistanceMiles: ptr(1)},
		{ID: "b", Title: "   ", Price: "10", DistanceMiles: ptr(1)},
		{ID: "c", Title: "Free couch", Price: "", DistanceMiles: ptr(1)},
		{ID: "d", Title: "Weird", Price: "-40", DistanceMiles: ptr(1)},
		{ID: "e", Title: "Nowhere", Price: "15"},
		{ID: "f", Title: "Backwards", Price: "15", DistanceMiles: ptr(-2)},
		{ID: "a", Title: "Xbox again", Price: "$110", DistanceMiles: ptr(10)},
		{ID: "g", Title: "Free", Price: "0", DistanceMiles: ptr(3)},
	}

	v := NewValidator(domain.Location{}, logger.Discard())
	got, rejected := v.Validate(raw)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].SourceID)
	assert.Equal(t, "feed", got[0].Source)
	assert.Equal(t, "g", got[1].SourceID)
	assert.Zero(t, got[1].AskingPrice)

	reasons := make([]string, 0, len(rejected))
	for _, r := range rejected {
		reasons = append(reasons, r.Reason)
	}
	assert.Equal(t, []string{
		ReasonMissingID,
		ReasonMissingTitle,
		ReasonNoPrice,
		ReasonBadPrice,
		ReasonNoLocation,
		ReasonBadDistance,
		ReasonDuplicate,
	}, reasons)
}

func TestValidator_DuplicateURL(t *testing.T) {
	t.Parallel()

	raw := []RawListing{
		{ID: "1", Title: "Bike", Price: "80", URL: "https://example.org/bike", DistanceMiles: ptr(2)},
		{ID: "2", Title: "Bike (repost)", Price: "75", URL: "https://example.org/bike", DistanceMiles: ptr(2)},
	}

	got, rejected := NewValidator(domain.Location{}, logger.Discard()).Validate(raw)
	require.Len(t, got, 1)
	require.Len(t, rejected, 1)
	assert.Equal(t, "2", rejected[0].SourceID)
	assert.Equal(t, ReasonDuplicate, rejected[0].Reason)
}

func TestValidator_DistanceFromHome(t *testing.T) {
	t.Parallel()

	home := domain.Location{Lat: 40.5865, Lon: -122.3917}
	raw := []RawListing{{
		ID:            "1",
		Title:         "Kayak",
		Price:         "300",
		Lat:           ptr(40.1785),
		Lon:           ptr(-122.2358),
		DistanceMiles: ptr(999),
	}}

	got, rejected := NewValidator(home, logger.Discard()).Validate(raw)
	require.Empty(t, rejected)
	require.Len(t, got, 1)
	assert.InDelta(t, 29.3, got[0].DistanceMiles, 1.0)
	assert.InDelta(t, 40.1785, got[0].Location.Lat, 1e-9)
}

func TestValidator_CleansText(t *testing.T) {
	t.Parallel()

	raw := []RawListing{{
		ID:            "1",
		Title:         "  Switch OLED!!!  ",
		Description:   "Works great!!! call me at 530-555-1212",
		Price:         "$250 obo",
		DistanceMiles: ptr(3),
	}}

	got, _ := NewValidator(domain.Location{}, logger.Discard()).Validate(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Switch OLED!", got[0].Title)
	assert.NotContains(t, got[0].Description, "555")
	assert.InDelta(t, 250.0, got[0].AskingPrice, 0.001)
}

func TestRawPrice_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want RawPrice
	}{
		{in: `"$1,200"`, want: "$1,200"},
		{in: `450`, want: "450"},
		{in: `12.5`, want: "12.5"},
		{in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			var p RawPrice
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, p)
		})
	}

	var p RawPrice
	require.Error(t, json.Unmarshal([]byte(`true`), &p))
}
