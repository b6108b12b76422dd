// Package ratelimit implements fixed-window rate limiting for the booking
// endpoint. Counters live behind a Store so single-process deployments can
// stay in memory while horizontally scaled ones externalize to Redis or
// Postgres.
package ratelimit

import (
	"context"
	"time"
)

// Result of one limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long to wait before the window opens again.
// Zero when the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store is a windowed counter backend. Increment adds one request to the live
// window for key, starting a fresh window when none exists or the previous
// one expired, and reports the resulting count plus the window's reset time.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type Limiter struct {
	store  Store
	limit  int
	window time.Duration
}

func New(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, limit: limit, window: window}
}

func (l *Limiter) Limit() int { return l.limit }

func (l *Limiter) Window() time.Duration { return l.window }

// Allow consumes one slot for key. Over-limit requests still count, so a
// client that keeps hammering never gets a fresh window until the original
// reset time passes. Exceeding the limit is a normal result, not an error.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	count, resetAt, err := l.store.Increment(ctx, key, l.window)
	if err != nil {
		return nil, err
	}

	res := &Result{Limit: l.limit, ResetAt: resetAt}
	if count > int64(l.limit) {
		return res, nil
	}

	res.Allowed = true
	res.Remaining = l.limit - int(count)
	return res, nil
}
