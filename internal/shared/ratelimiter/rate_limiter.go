// Package ratelimiter limits the frequency of operations such as outbound
// API calls.
package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface caps how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces a fixed-window limit on operations.
type RateLimiter struct {
	limit     int           // maximum calls per window
	interval  time.Duration // window length
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the limit for the current window has been
// reached and sleeps until the window resets if so.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	// Reset the counter once the window has passed.
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit hit, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
