// Package store defines the datastore abstraction for localflipper.
// Business logic depends on the Store interface, never on the concrete
// Postgres implementation.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("not found")

// DealQuery defines optional filters for deal queries.
type DealQuery struct {
	SearchID  *string
	Verdict   *string
	MinProfit *float64
	Limit     int // default 50
	Offset    int
	OrderBy   string // "rank", "profit", "evaluated_at"
}

// Store defines all data access operations for localflipper.
type Store interface {
	// Saved searches
	CreateSearch(ctx context.Context, s *domain.SavedSearch) error
	GetSearch(ctx context.Context, id string) (*domain.SavedSearch, error)
	ListSearches(ctx context.Context, enabledOnly bool) ([]domain.SavedSearch, error)
	UpdateSearch(ctx context.Context, s *domain.SavedSearch) error
	DeleteSearch(ctx context.Context, id string) error
	UpdateSearchLastRun(ctx context.Context, id string, t time.Time) error

	// Search runs
	InsertSearchRun(ctx context.Context, searchID string) (id string, err error)
	CompleteSearchRun(ctx context.Context, id, status, errText string, listings, deals int) error
	ListSearchRuns(ctx context.Context, searchID string, limit int) ([]domain.SearchRun, error)
	RecoverStaleSearchRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Deals
	UpsertDeals(ctx context.Context, deals []domain.Deal) error
	ListDeals(ctx context.Context, q *DealQuery) ([]domain.Deal, int, error)
	ListUnnotifiedDeals(ctx context.Context, limit int) ([]domain.Deal, error)
	MarkDealsNotified(ctx context.Context, ids []string) error

	// Scheduler
	AcquireSchedulerLock(ctx context.Context, jobName, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
