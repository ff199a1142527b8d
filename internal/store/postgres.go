package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods need a live database and are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures NewPostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // pool sizes are small
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

func searchArgs(ss *domain.SavedSearch) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           ss.ID,
		"name":         ss.Name,
		"query":        ss.Query,
		"site":         ss.Site,
		"postal_code":  ss.PostalCode,
		"radius_miles": ss.RadiusMi,
		"max_price":    ss.MaxPrice,
		"max_results":  ss.MaxResults,
		"enabled":      ss.Enabled,
	}
}

// CreateSearch inserts a saved search and fills in its ID and timestamps.
func (s *PostgresStore) CreateSearch(ctx context.Context, ss *domain.SavedSearch) error {
	if err := s.pool.QueryRow(ctx, queryInsertSearch, searchArgs(ss)).Scan(
		&ss.ID, &ss.CreatedAt, &ss.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating search: %w", err)
	}
	return nil
}

// GetSearch retrieves a saved search by its ID.
func (s *PostgresStore) GetSearch(ctx context.Context, id string) (*domain.SavedSearch, error) {
	ss := &domain.SavedSearch{}
	err := scanSearch(s.pool.QueryRow(ctx, queryGetSearch, id), ss)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("search %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting search: %w", err)
	}
	return ss, nil
}

// ListSearches returns all saved searches, optionally only enabled ones.
func (s *PostgresStore) ListSearches(ctx context.Context, enabledOnly bool) ([]domain.SavedSearch, error) {
	query := queryListSearchesAll
	if enabledOnly {
		query = queryListSearchesEnabled
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.SavedSearch
	for rows.Next() {
		var ss domain.SavedSearch
		if err := scanSearch(rows, &ss); err != nil {
			return nil, fmt.Errorf("scanning search: %w", err)
		}
		searches = append(searches, ss)
	}

	return searches, rows.Err()
}

// UpdateSearch overwrites the editable fields of a saved search.
func (s *PostgresStore) UpdateSearch(ctx context.Context, ss *domain.SavedSearch) error {
	err := s.pool.QueryRow(ctx, queryUpdateSearch, searchArgs(ss)).Scan(&ss.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("search %s: %w", ss.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating search: %w", err)
	}
	return nil
}

// DeleteSearch removes a saved search and its run history.
func (s *PostgresStore) DeleteSearch(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteSearch, id)
	if err != nil {
		return fmt.Errorf("deleting search: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateSearchLastRun records when a saved search last ran.
func (s *PostgresStore) UpdateSearchLastRun(ctx context.Context, id string, t time.Time) error {
	if _, err := s.pool.Exec(ctx, queryUpdateSearchLastRun, id, t); err != nil {
		return fmt.Errorf("updating search last run: %w", err)
	}
	return nil
}

// InsertSearchRun starts a run record in the 'running' state.
func (s *PostgresStore) InsertSearchRun(ctx context.Context, searchID string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertSearchRun, searchID).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting search run: %w", err)
	}
	return id, nil
}

// CompleteSearchRun finishes a run record.
func (s *PostgresStore) CompleteSearchRun(
	ctx context.Context,
	id, status, errText string,
	listings, deals int,
) error {
	if _, err := s.pool.Exec(ctx, queryCompleteSearchRun, id, status, errText, listings, deals); err != nil {
		return fmt.Errorf("completing search run: %w", err)
	}
	return nil
}

// ListSearchRuns returns the most recent runs of a saved search.
func (s *PostgresStore) ListSearchRuns(ctx context.Context, searchID string, limit int) ([]domain.SearchRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListSearchRuns, searchID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SearchRun
	for rows.Next() {
		var r domain.SearchRun
		if err := rows.Scan(
			&r.ID, &r.SearchID, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.Listings, &r.Deals,
		); err != nil {
			return nil, fmt.Errorf("scanning search run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecoverStaleSearchRuns marks 'running' rows older than olderThan as
// failed. These are left behind when the process dies mid-run.
func (s *PostgresStore) RecoverStaleSearchRuns(ctx context.Context, olderThan time.Duration) (int, error) {
	tag, err := s.pool.Exec(ctx, queryRecoverStaleSearchRuns, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("recovering stale search runs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UpsertDeals stores deals in one batch, keyed by (source, source_id).
// A re-evaluated listing replaces its earlier evaluation but keeps its
// notified flag. IDs and notified flags are written back into deals.
func (s *PostgresStore) UpsertDeals(ctx context.Context, deals []domain.Deal) error {
	if len(deals) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range deals {
		args, err := dealArgs(&deals[i])
		if err != nil {
			return err
		}
		batch.Queue(queryUpsertDeal, args)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()

	for i := range deals {
		if err := br.QueryRow().Scan(&deals[i].ID, &deals[i].Notified); err != nil {
			return fmt.Errorf("upserting deal %s: %w", deals[i].Listing.SourceID, err)
		}
	}
	return nil
}

func dealArgs(d *domain.Deal) (pgx.NamedArgs, error) {
	listingJSON, err := json.Marshal(d.Listing)
	if err != nil {
		return nil, fmt.Errorf("marshaling listing: %w", err)
	}
	evalJSON, err := json.Marshal(d.Evaluation)
	if err != nil {
		return nil, fmt.Errorf("marshaling evaluation: %w", err)
	}

	evaluatedAt := d.EvaluatedAt
	if evaluatedAt.IsZero() {
		evaluatedAt = time.Now()
	}

	return pgx.NamedArgs{
		"search_id":       d.SearchID,
		"search_term":     d.SearchTerm,
		"source":          d.Listing.Source,
		"source_id":       d.Listing.SourceID,
		"verdict":         string(d.Evaluation.Verdict),
		"demand_rank":     d.Evaluation.Demand.Rank(),
		"profit_estimate": d.Evaluation.ProfitEstimate,
		"listing":         listingJSON,
		"evaluation":      evalJSON,
		"evaluated_at":    evaluatedAt,
	}, nil
}

// ListDeals queries deals with optional filters, returning results and the
// total count.
func (s *PostgresStore) ListDeals(ctx context.Context, q *DealQuery) ([]domain.Deal, int, error) {
	if q == nil {
		q = &DealQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting deals: %w", err)
	}

	deals, err := s.queryDeals(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

// ListUnnotifiedDeals returns profitable deals that have not been alerted.
func (s *PostgresStore) ListUnnotifiedDeals(ctx context.Context, limit int) ([]domain.Deal, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.queryDeals(ctx, queryListUnnotifiedDeals, limit)
}

// MarkDealsNotified flags deals as alerted.
func (s *PostgresStore) MarkDealsNotified(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, queryMarkDealsNotified, ids); err != nil {
		return fmt.Errorf("marking deals notified: %w", err)
	}
	return nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName, holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(ctx context.Context, jobName, holder string) error {
	if _, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder); err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

func (s *PostgresStore) queryDeals(ctx context.Context, query string, args ...any) ([]domain.Deal, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		var d domain.Deal
		if err := scanDeal(rows, &d); err != nil {
			return nil, fmt.Errorf("scanning deal: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanSearch(row scannable, ss *domain.SavedSearch) error {
	return row.Scan(
		&ss.ID, &ss.Name, &ss.Query, &ss.Site, &ss.PostalCode, &ss.RadiusMi, &ss.MaxPrice,
		&ss.MaxResults, &ss.Enabled, &ss.LastRunAt, &ss.CreatedAt, &ss.UpdatedAt,
	)
}

func scanDeal(row scannable, d *domain.Deal) error {
	var listingJSON, evalJSON []byte
	if err := row.Scan(
		&d.ID, &d.SearchID, &d.SearchTerm,
		&listingJSON, &evalJSON, &d.EvaluatedAt, &d.Notified,
	); err != nil {
		return err
	}
	if err := json.Unmarshal(listingJSON, &d.Listing); err != nil {
		return fmt.Errorf("unmarshaling listing: %w", err)
	}
	if err := json.Unmarshal(evalJSON, &d.Evaluation); err != nil {
		return fmt.Errorf("unmarshaling evaluation: %w", err)
	}
	return nil
}
