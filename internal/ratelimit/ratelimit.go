// Package ratelimit bounds request volume per client-route key using a
// fixed time window. Each route class gets its own Limiter instance with
// its own thresholds; instances share nothing.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Config configures a single Limiter.
type Config struct {
	// Window is the fixed interval during which at most Max requests pass.
	Window time.Duration
	// Max is the number of requests permitted per key per window.
	Max int
	// Message is the client-facing denial message for 429 responses.
	Message string
}

// Denial is the structured negative outcome of a limit check, returned as a
// value rather than an error.
type Denial struct {
	Message    string
	RetryAfter time.Duration
}

// RetryAfterSeconds returns the Retry-After header value, rounded up so a
// client that waits the advertised time always lands in a fresh window.
func (d Denial) RetryAfterSeconds() int {
	secs := int((d.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// WindowStore maintains per-key counters. Incr increments the counter for
// key, starting a fresh window when none is active, and reports the
// post-increment count together with the window's reset time.
type WindowStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// Limiter decides allow/deny for a key against its configured window.
type Limiter struct {
	cfg   Config
	store WindowStore
}

// New constructs a Limiter backed by the given store.
func New(cfg Config, store WindowStore) (*Limiter, error) {
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %v", cfg.Window)
	}
	if cfg.Max < 1 {
		return nil, fmt.Errorf("max must be at least 1, got %d", cfg.Max)
	}
	if store == nil {
		return nil, fmt.Errorf("window store is required")
	}
	if cfg.Message == "" {
		cfg.Message = "Too many requests, please try again later"
	}
	return &Limiter{cfg: cfg, store: store}, nil
}

// Allow records a request for key and returns a Denial when the
// post-increment count exceeds the configured maximum. The first request of
// a new or expired window always passes. A nil Denial means the request may
// proceed.
func (l *Limiter) Allow(ctx context.Context, key string) (*Denial, error) {
	count, resetAt, err := l.store.Incr(ctx, key, l.cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("increment window counter: %w", err)
	}
	if count <= l.cfg.Max {
		return nil, nil
	}
	return &Denial{
		Message:    l.cfg.Message,
		RetryAfter: time.Until(resetAt),
	}, nil
}
