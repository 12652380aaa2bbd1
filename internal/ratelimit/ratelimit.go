// Package ratelimit paces outbound API requests with a token bucket.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter spaces consecutive requests so the remote API never sees more than
// the configured rate. Burst is fixed at 1: one request in flight at a time.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a limiter allowing rps requests per second.
// rps <= 0 disables pacing (every Wait returns immediately).
func New(rps float64) *Limiter {
	if rps <= 0 {
		return &Limiter{}
	}
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next request is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.bucket == nil {
		return nil
	}
	return l.bucket.Wait(ctx)
}
