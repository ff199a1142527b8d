package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter combines a token bucket for per-second pacing with a daily
// call quota that resets at midnight in the limiter's time zone.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	loc      *time.Location
	nowFunc  func() time.Time

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// WithQuotaLocation sets the time zone whose midnight resets the daily
// quota. eBay resets application quotas at midnight Pacific time.
func WithQuotaLocation(loc *time.Location) RateLimiterOption {
	return func(r *RateLimiter) {
		r.loc = loc
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size and daily limit.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		loc:      time.UTC,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nextMidnight(r.nowFunc())
	return r
}

// Wait reserves one call from the daily quota and blocks until the token
// bucket allows it. Returns ErrDailyLimitReached when the quota is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	r.resetIfDueLocked()
	if r.daily >= r.maxDaily {
		used := r.daily
		r.mu.Unlock()
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, used, r.maxDaily)
	}
	r.daily++
	r.mu.Unlock()

	if err := r.limiter.Wait(ctx); err != nil {
		r.mu.Lock()
		r.daily--
		r.mu.Unlock()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// QuotaSnapshot is a point-in-time view of the daily quota.
type QuotaSnapshot struct {
	Used      int64     `json:"used"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Snapshot returns the current quota usage.
func (r *RateLimiter) Snapshot() QuotaSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetIfDueLocked()

	return QuotaSnapshot{
		Used:      r.daily,
		Limit:     r.maxDaily,
		Remaining: max(0, r.maxDaily-r.daily),
		ResetAt:   r.resetAt,
	}
}

// DailyCount returns the number of calls made since the last reset.
func (r *RateLimiter) DailyCount() int64 {
	return r.Snapshot().Used
}

// Remaining returns the number of calls left before the next reset.
func (r *RateLimiter) Remaining() int64 {
	return r.Snapshot().Remaining
}

func (r *RateLimiter) resetIfDueLocked() {
	now := r.nowFunc()
	if !now.Before(r.resetAt) {
		r.daily = 0
		r.resetAt = r.nextMidnight(now)
	}
}

func (r *RateLimiter) nextMidnight(now time.Time) time.Time {
	local := now.In(r.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, r.loc)
}
