package ebay_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/ebay/mocks"
)

func pricedItems(prices ...string) []ebay.ItemSummary {
	items := make([]ebay.ItemSummary, 0, len(prices))
	for _, p := range prices {
		items = append(items, ebay.ItemSummary{
			Price:       ebay.ItemPrice{Value: p, Currency: "USD"},
			ConditionID: "3000",
		})
	}
	return items
}

var fixedNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func TestMarket_Comparables(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
			return r.Query == "xbox series x" && r.Offset == 0 && r.Limit == 3
		})).
		Return(&ebay.SearchResponse{Items: pricedItems("180", "190"), HasMore: true}, nil).
		Once()
	client.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
			return r.Offset == 3
		})).
		Return(&ebay.SearchResponse{Items: pricedItems("200", "210"), HasMore: true}, nil).
		Once()

	market := ebay.NewMarket(
		client,
		ebay.WithComparablesLimit(3),
		ebay.WithMarketNowFunc(func() time.Time { return fixedNow }),
	)

	set, err := market.Comparables(context.Background(), "  xbox series x ")
	require.NoError(t, err)

	assert.Equal(t, "xbox series x", set.Query)
	assert.Equal(t, fixedNow, set.AsOf)
	assert.Equal(t, []float64{180, 190, 200}, set.Prices(), "order kept and capped at the limit")
}

func TestMarket_Comparables_StopsWhenNoMore(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(&ebay.SearchResponse{Items: pricedItems("10", "abc"), HasMore: false}, nil).
		Once()

	set, err := ebay.NewMarket(client).Comparables(context.Background(), "lamp")
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestMarket_Comparables_MaxPages(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockEbayClient(t)
	client.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(&ebay.SearchResponse{Items: pricedItems("10"), HasMore: true}, nil).
		Times(2)

	set, err := ebay.NewMarket(client, ebay.WithMaxPages(2)).Comparables(context.Background(), "lamp")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestMarket_Comparables_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockEbayClient(t)
		_, err := ebay.NewMarket(client).Comparables(context.Background(), "   ")
		require.ErrorIs(t, err, ebay.ErrEmptyQuery)
	})

	t.Run("search failure", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockEbayClient(t)
		client.EXPECT().
			Search(mock.Anything, mock.Anything).
			Return(nil, ebay.ErrDailyLimitReached)

		_, err := ebay.NewMarket(client).Comparables(context.Background(), "lamp")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ebay.ErrDailyLimitReached))
		assert.Contains(t, err.Error(), "searching comparables page 0")
	})
}

func TestUnconfigured_Comparables(t *testing.T) {
	t.Parallel()

	var m ebay.MarketData = ebay.Unconfigured{}
	comps, err := m.Comparables(context.Background(), "ps5")
	require.ErrorIs(t, err, ebay.ErrNotConfigured)
	assert.Empty(t, comps.Sales)
}
