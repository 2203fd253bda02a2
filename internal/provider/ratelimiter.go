package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket for outbound provider calls. Free-tier
// quote and FX APIs throttle hard, so every client in this package waits
// on one of these before touching the network.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     int
	maxTokens  int
	refillEach time.Duration
	lastRefill time.Time
}

// NewRateLimiter allows maxTokens immediate calls, then one more per
// refillEach.
func NewRateLimiter(maxTokens int, refillEach time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillEach: refillEach,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		r.refill()
		if r.tokens > 0 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.refillEach):
		}
	}
}

func (r *RateLimiter) refill() {
	elapsed := time.Since(r.lastRefill)
	earned := int(elapsed / r.refillEach)
	if earned <= 0 {
		return
	}
	r.tokens += earned
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
	r.lastRefill = r.lastRefill.Add(time.Duration(earned) * r.refillEach)
}
