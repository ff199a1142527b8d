//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/localflipper/internal/store"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("lfl_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.WithPoolSize(4))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSearch() *domain.SavedSearch {
	maxPrice := 250.0
	return &domain.SavedSearch{
		Name:       "Consoles near Redding",
		Query:      "xbox series x",
		Site:       "craigslist",
		PostalCode: "96001",
		RadiusMi:   30,
		MaxPrice:   &maxPrice,
		MaxResults: 50,
		Enabled:    true,
	}
}

func testDeal(searchID, id string, demand domain.DemandLabel, profit float64) domain.Deal {
	return domain.Deal{
		SearchID:   searchID,
		SearchTerm: "xbox series x",
		Listing: domain.ListingRecord{
			SourceID:      id,
			Source:        "craigslist",
			Title:         "Xbox Series X " + id,
			AskingPrice:   120,
			DistanceMiles: 15.5,
		},
		Evaluation: domain.EvaluationResult{
			SourceID:       id,
			Condition:      domain.ConditionLikeNew,
			Demand:         demand,
			FairValue:      185,
			ProfitEstimate: profit,
			Verdict:        domain.VerdictProfitable,
		},
		EvaluatedAt: time.Now().Truncate(time.Microsecond),
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_SearchCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ss := testSearch()
	require.NoError(t, s.CreateSearch(ctx, ss))
	require.NotEmpty(t, ss.ID)
	assert.False(t, ss.CreatedAt.IsZero())

	got, err := s.GetSearch(ctx, ss.ID)
	require.NoError(t, err)
	assert.Equal(t, "xbox series x", got.Query)
	require.NotNil(t, got.MaxPrice)
	assert.InDelta(t, 250.0, *got.MaxPrice, 0.001)

	got.Enabled = false
	got.RadiusMi = 60
	require.NoError(t, s.UpdateSearch(ctx, got))

	enabled, err := s.ListSearches(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := s.ListSearches(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 60, all[0].RadiusMi)

	now := time.Now().Truncate(time.Microsecond)
	require.NoError(t, s.UpdateSearchLastRun(ctx, ss.ID, now))
	got, err = s.GetSearch(ctx, ss.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastRunAt)
	assert.WithinDuration(t, now, *got.LastRunAt, time.Millisecond)

	require.NoError(t, s.DeleteSearch(ctx, ss.ID))
	_, err = s.GetSearch(ctx, ss.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.DeleteSearch(ctx, ss.ID), store.ErrNotFound)
}

func TestPostgresStore_SearchRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ss := testSearch()
	require.NoError(t, s.CreateSearch(ctx, ss))

	done, err := s.InsertSearchRun(ctx, ss.ID)
	require.NoError(t, err)
	require.NoError(t, s.CompleteSearchRun(ctx, done, "succeeded", "", 12, 3))

	_, err = s.InsertSearchRun(ctx, ss.ID)
	require.NoError(t, err)

	recovered, err := s.RecoverStaleSearchRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	runs, err := s.ListSearchRuns(ctx, ss.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	statuses := []string{runs[0].Status, runs[1].Status}
	assert.ElementsMatch(t, []string{"succeeded", "failed"}, statuses)
}

func TestPostgresStore_Deals(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ss := testSearch()
	require.NoError(t, s.CreateSearch(ctx, ss))

	deals := []domain.Deal{
		testDeal(ss.ID, "a", domain.DemandMedium, 80),
		testDeal(ss.ID, "b", domain.DemandHigh, 20),
		testDeal(ss.ID, "c", domain.DemandHigh, 50),
	}
	require.NoError(t, s.UpsertDeals(ctx, deals))
	for _, d := range deals {
		assert.NotEmpty(t, d.ID)
	}

	got, total, err := s.ListDeals(ctx, &store.DealQuery{SearchID: &ss.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Listing.SourceID)
	assert.Equal(t, "b", got[1].Listing.SourceID)
	assert.Equal(t, "a", got[2].Listing.SourceID)
	assert.Equal(t, domain.ConditionLikeNew, got[0].Evaluation.Condition)

	minProfit := 40.0
	_, total, err = s.ListDeals(ctx, &store.DealQuery{MinProfit: &minProfit})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	pending, err := s.ListUnnotifiedDeals(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 3)

	require.NoError(t, s.MarkDealsNotified(ctx, []string{deals[0].ID, deals[1].ID}))

	pending, err = s.ListUnnotifiedDeals(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "c", pending[0].Listing.SourceID)

	t.Run("re-evaluation keeps notified flag", func(t *testing.T) {
		again := []domain.Deal{testDeal(ss.ID, "a", domain.DemandLow, 5)}
		require.NoError(t, s.UpsertDeals(ctx, again))
		assert.Equal(t, deals[0].ID, again[0].ID)
		assert.True(t, again[0].Notified)
	})
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ok, err := s.AcquireSchedulerLock(ctx, "search", "host-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireSchedulerLock(ctx, "search", "host-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ReleaseSchedulerLock(ctx, "search", "host-a"))

	ok, err = s.AcquireSchedulerLock(ctx, "search", "host-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
