package meli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily marketplace call budget
// has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter throttles outbound marketplace calls with a token bucket and
// tracks usage against a rolling 24-hour budget.
type RateLimiter struct {
	bucket   *rate.Limiter
	used     atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily budget. The window resets 24 hours after it opens.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		bucket:   rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until the limiter admits the call or ctx is canceled.
// Returns ErrDailyLimitReached once the daily budget is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.rollWindow()

	if used := r.used.Load(); used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, used, r.maxDaily)
	}

	if err := r.bucket.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.used.Add(1)
	return nil
}

// DailyCount returns the number of calls admitted in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.used.Load()
}

// MaxDaily returns the configured daily budget.
func (r *RateLimiter) MaxDaily() int64 {
	return r.maxDaily
}

// Remaining returns how many calls are left in the current window.
func (r *RateLimiter) Remaining() int64 {
	left := r.maxDaily - r.used.Load()
	if left < 0 {
		return 0
	}
	return left
}

// ResetAt returns when the current window expires and the counter resets.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

func (r *RateLimiter) rollWindow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now := r.nowFunc(); now.After(r.resetAt) {
		r.used.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}
