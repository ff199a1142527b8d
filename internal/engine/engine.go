// Package engine runs saved searches end to end: fetch local listings,
// look up comparables, evaluate, select deals, persist and alert.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/metrics"
	"github.com/donaldgifford/localflipper/internal/notify"
	"github.com/donaldgifford/localflipper/internal/source"
	"github.com/donaldgifford/localflipper/internal/store"
	"github.com/donaldgifford/localflipper/pkg/logger"
	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const (
	defaultMaxCallsPerCycle = 100

	runStatusSucceeded = "succeeded"
	runStatusFailed    = "failed"
)

var tracer = otel.Tracer("github.com/donaldgifford/localflipper/internal/engine")

// Engine orchestrates search runs.
type Engine struct {
	store    store.Store
	source   source.ListingSource
	market   ebay.MarketData
	notifier notify.Notifier
	log      *slog.Logger

	params           score.Params
	fuel             score.FuelParams
	filter           DealFilter
	concurrency      int
	maxCallsPerCycle int
	now              func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	src source.ListingSource,
	m ebay.MarketData,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		source:           src,
		market:           m,
		notifier:         n,
		log:              logger.Component(nil, "engine"),
		params:           score.DefaultParams(),
		fuel:             score.DefaultFuelParams(),
		concurrency:      defaultConcurrency,
		maxCallsPerCycle: defaultMaxCallsPerCycle,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = logger.Component(l, "engine")
	}
}

// WithParams sets the demand and pricing parameters.
func WithParams(p score.Params) EngineOption {
	return func(e *Engine) {
		e.params = p
	}
}

// WithFuel sets the travel cost parameters.
func WithFuel(f score.FuelParams) EngineOption {
	return func(e *Engine) {
		e.fuel = f
	}
}

// WithDealFilter sets the profit targets a deal must clear.
func WithDealFilter(f DealFilter) EngineOption {
	return func(e *Engine) {
		e.filter = f
	}
}

// WithConcurrency sets the evaluation worker count.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithMaxCallsPerCycle caps comparables lookups per search run.
func WithMaxCallsPerCycle(n int) EngineOption {
	return func(e *Engine) {
		e.maxCallsPerCycle = n
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Params returns the scoring parameters the engine evaluates with.
func (eng *Engine) Params() score.Params { return eng.params }

// Fuel returns the travel cost parameters the engine evaluates with.
func (eng *Engine) Fuel() score.FuelParams { return eng.fuel }

// RunSummary describes one completed search run.
type RunSummary struct {
	SearchID  string        `json:"search_id"`
	RunID     string        `json:"run_id"`
	Listings  int           `json:"listings"`
	Evaluated int           `json:"evaluated"`
	Skipped   int           `json:"skipped"`
	Deals     []domain.Deal `json:"deals"`
}

// RunAll runs every enabled saved search, then sends pending alerts.
// A failing search is logged and does not stop the others; the failures
// are returned joined.
func (eng *Engine) RunAll(ctx context.Context) ([]RunSummary, error) {
	searches, err := eng.store.ListSearches(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing searches: %w", err)
	}

	var (
		summaries []RunSummary
		errs      []error
	)
	for i := range searches {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		sum, err := eng.RunSearch(ctx, &searches[i])
		if err != nil {
			eng.log.Error("search run failed", "search", searches[i].Name, "error", err)
			errs = append(errs, fmt.Errorf("search %s: %w", searches[i].Name, err))
			continue
		}
		summaries = append(summaries, *sum)
	}

	// Always process alerts, even when some searches failed.
	if err := ProcessAlerts(ctx, eng.store, eng.notifier, eng.log); err != nil {
		eng.log.Error("alert processing failed", "error", err)
	}

	return summaries, errors.Join(errs...)
}

// RunSearch executes one saved search and records the run.
func (eng *Engine) RunSearch(ctx context.Context, s *domain.SavedSearch) (*RunSummary, error) {
	ctx, span := tracer.Start(ctx, "engine.RunSearch", trace.WithAttributes(
		attribute.String("search.id", s.ID),
		attribute.String("search.query", s.Query),
	))
	defer span.End()

	start := eng.now()
	defer func() {
		metrics.SearchRunDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertSearchRun(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("starting search run: %w", err)
	}

	sum, runErr := eng.runSearch(ctx, s)
	sum.SearchID, sum.RunID = s.ID, runID

	status, errText := runStatusSucceeded, ""
	if runErr != nil {
		status, errText = runStatusFailed, runErr.Error()
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	}
	metrics.SearchRunsTotal.WithLabelValues(status).Inc()

	// The run record is finished even when ctx was cancelled mid-run.
	finishCtx := context.WithoutCancel(ctx)
	if err := eng.store.CompleteSearchRun(finishCtx, runID, status, errText, sum.Listings, len(sum.Deals)); err != nil {
		eng.log.Error("completing search run failed", "run", runID, "error", err)
	}
	if err := eng.store.UpdateSearchLastRun(finishCtx, s.ID, start); err != nil {
		eng.log.Error("updating last run failed", "search", s.ID, "error", err)
	}

	if runErr != nil {
		return nil, runErr
	}

	span.SetAttributes(
		attribute.Int("listings", sum.Listings),
		attribute.Int("deals", len(sum.Deals)),
	)
	eng.log.Info("search run complete",
		"search", s.Name,
		"listings", sum.Listings,
		"evaluated", sum.Evaluated,
		"skipped", sum.Skipped,
		"deals", len(sum.Deals),
		"duration", time.Since(start),
	)
	return &sum, nil
}

func (eng *Engine) runSearch(ctx context.Context, s *domain.SavedSearch) (RunSummary, error) {
	var sum RunSummary

	listings, err := eng.source.Fetch(ctx, source.QueryFromSearch(s))
	if err != nil {
		return sum, fmt.Errorf("fetching listings: %w", err)
	}
	sum.Listings = len(listings)
	if len(listings) == 0 {
		return sum, nil
	}

	items := eng.gatherComparables(ctx, listings)
	sum.Skipped = len(listings) - len(items)

	outcomes, err := EvaluateBatch(ctx, items, LocalSupply(len(listings)), eng.fuel, eng.params, eng.concurrency)
	if err != nil {
		return sum, fmt.Errorf("evaluating listings: %w", err)
	}
	sum.Evaluated = recordOutcomes(eng.log, outcomes)

	selected := SelectDeals(outcomes, eng.filter)
	metrics.DealsTotal.Add(float64(len(selected)))

	evaluatedAt := eng.now()
	deals := make([]domain.Deal, len(selected))
	for i := range selected {
		deals[i] = domain.Deal{
			SearchID:    s.ID,
			SearchTerm:  s.Query,
			Listing:     selected[i].Listing,
			Evaluation:  selected[i].Result,
			EvaluatedAt: evaluatedAt,
		}
	}

	if len(deals) > 0 {
		if err := eng.store.UpsertDeals(ctx, deals); err != nil {
			return sum, fmt.Errorf("saving deals: %w", err)
		}
	}
	sum.Deals = deals
	return sum, nil
}

// gatherComparables looks up comparables for each listing title. Identical
// titles share one lookup. Once the per-run budget or the daily quota is
// spent, the remaining listings are skipped.
func (eng *Engine) gatherComparables(ctx context.Context, listings []domain.ListingRecord) []BatchItem {
	cache := make(map[string]domain.ComparableSaleSet)
	items := make([]BatchItem, 0, len(listings))
	calls := 0

	for i := range listings {
		key := comparablesKey(listings[i].Title)
		comps, ok := cache[key]
		if !ok {
			if eng.maxCallsPerCycle > 0 && calls >= eng.maxCallsPerCycle {
				eng.log.Warn("comparables budget exhausted",
					"calls", calls,
					"remaining_listings", len(listings)-i,
				)
				break
			}
			calls++

			var err error
			comps, err = eng.market.Comparables(ctx, listings[i].Title)
			if errors.Is(err, ebay.ErrDailyLimitReached) {
				eng.log.Warn("daily eBay quota reached, skipping remaining listings",
					"remaining_listings", len(listings)-i,
				)
				break
			}
			if err != nil {
				eng.log.Error("comparables lookup failed",
					"listing", listings[i].SourceID,
					"error", err,
				)
				continue
			}
			cache[key] = comps
		}
		items = append(items, BatchItem{Listing: listings[i], Comparables: comps})
	}

	return items
}

// EvaluateListing fetches comparables for a single listing and evaluates it.
func (eng *Engine) EvaluateListing(
	ctx context.Context,
	listing *domain.ListingRecord,
	localSupply int,
) (domain.EvaluationResult, error) {
	comps, err := eng.Comparables(ctx, listing.Title)
	if err != nil {
		return domain.EvaluationResult{}, fmt.Errorf("fetching comparables: %w", err)
	}
	return score.Evaluate(listing, comps, localSupply, eng.fuel, eng.params)
}

// Comparables returns live comparable sales for an item title.
func (eng *Engine) Comparables(ctx context.Context, title string) (domain.ComparableSaleSet, error) {
	return eng.market.Comparables(ctx, title)
}

// LocalSupply is the number of competing listings a run saw for each of
// its n listings.
func LocalSupply(n int) int {
	return max(n-1, 0)
}

func comparablesKey(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

func recordOutcomes(log *slog.Logger, outcomes []Outcome) int {
	evaluated := 0
	for i := range outcomes {
		o := &outcomes[i]
		if o.Err != nil {
			metrics.EvaluationErrorsTotal.Inc()
			log.Warn("evaluation failed", "listing", o.Listing.SourceID, "error", o.Err)
			continue
		}
		evaluated++
		metrics.EvaluationsTotal.WithLabelValues(string(o.Result.Verdict)).Inc()
		metrics.DemandLabelsTotal.WithLabelValues(string(o.Result.Demand)).Inc()
		if o.Result.HasMarketBasis {
			metrics.ProfitEstimate.Observe(o.Result.ProfitEstimate)
		}
	}
	return evaluated
}
