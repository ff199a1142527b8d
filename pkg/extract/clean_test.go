package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/pkg/extract"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func TestCleanSellerText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips emoji and repeated punctuation",
			raw:  "🔥🔥 PS5 for sale!!! 🔥 Works great...",
			want: "PS5 for sale! Works great.",
		},
		{
			name: "removes phone numbers and emails",
			raw:  "Selling my bike 530-555-1234 or bob@example.com",
			want: "Selling my bike or",
		},
		{
			name: "drops call me lines",
			raw:  "Mountain bike, 21 speed\nCall me after 5pm\nPickup in Redding",
			want: "Mountain bike, 21 speed\n\nPickup in Redding",
		},
		{
			name: "collapses whitespace and blank lines",
			raw:  "  Desk   chair \n\n\n\n  $40  ",
			want: "Desk chair\n\n$40",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.CleanSellerText(tt.raw))
		})
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "dollar sign", raw: "$120", want: 120},
		{name: "thousands separator", raw: "$1,200", want: 1200},
		{name: "cents", raw: "45.99", want: 45.99},
		{name: "trailing text", raw: "450 obo", want: 450},
		{name: "no number", raw: "free to good home", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.ParsePrice(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, extract.ErrNoPrice)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestRateSeller(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		want        domain.SellerRating
		wantFlags   []string
	}{
		{
			name:        "green flags",
			title:       "iPad Air with original box",
			description: "Have the receipt, smoke free home",
			want:        domain.SellerTrusted,
			wantFlags:   []string{"+receipt", "+original box", "+smoke free"},
		},
		{
			name:        "two red flags",
			title:       "Laptop cash only",
			description: "no returns, sold as is",
			want:        domain.SellerCaution,
			wantFlags:   []string{"-cash only", "-no returns", "-as is"},
		},
		{
			name:        "balanced",
			title:       "Drill set tested",
			description: "cash only",
			want:        domain.SellerNeutral,
			wantFlags:   []string{"-cash only", "+tested"},
		},
		{
			name:  "no flags",
			title: "Road bike",
			want:  domain.SellerNeutral,
		},
		{
			name:        "untested is not tested",
			title:       "Amp untested",
			description: "",
			want:        domain.SellerCaution,
			wantFlags:   []string{"-untested"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, flags := extract.RateSeller(tt.title, tt.description)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFlags, flags)
		})
	}
}
