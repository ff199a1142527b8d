//go:build integration

package ebay_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/ebay"
)

// TestMarket_Integration requires live eBay API credentials.
// Run with: go test -tags=integration -run TestMarket_Integration ./internal/ebay/...
//
// Required environment variables:
//   - EBAY_APP_ID: eBay application ID (client ID)
//   - EBAY_CERT_ID: eBay certificate ID (client secret)
func TestMarket_Integration(t *testing.T) {
	appID := os.Getenv("EBAY_APP_ID")
	certID := os.Getenv("EBAY_CERT_ID")

	if appID == "" || certID == "" {
		t.Skip("EBAY_APP_ID and EBAY_CERT_ID must be set for integration tests")
	}

	tokens := ebay.NewOAuthTokenProvider(appID, certID)
	market := ebay.NewMarket(ebay.NewBrowseClient(tokens), ebay.WithComparablesLimit(5))

	set, err := market.Comparables(context.Background(), "nintendo switch oled")
	require.NoError(t, err)
	assert.Positive(t, set.Len())

	for _, sale := range set.Sales {
		assert.Positive(t, sale.Price)
	}
}
