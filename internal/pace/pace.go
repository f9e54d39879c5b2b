// Package pace provides the delay taken before every network hop.
package pace

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"wcoget/internal/log"
)

// Pacer blocks until the caller may issue its next request.
// Implementations must be safe for concurrent use.
type Pacer interface {
	Pace(ctx context.Context) error
}

// Sleep waits a fixed duration on the calling goroutine. Concurrent workers
// each wait independently, so aggregate rate scales with the worker count.
type Sleep time.Duration

func (s Sleep) Pace(ctx context.Context) error {
	d := time.Duration(s)
	if d <= 0 {
		return ctx.Err()
	}
	log.Debugf("waiting for rate limit: %s", d)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Shared hands out one request slot per interval across all callers.
type Shared struct {
	limiter *rate.Limiter
}

// NewShared creates a Shared pacer. The first slot is available immediately.
func NewShared(interval time.Duration) *Shared {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Shared{limiter: rate.NewLimiter(limit, 1)}
}

func (s *Shared) Pace(ctx context.Context) error {
	r := s.limiter.Reserve()
	d := r.Delay()
	if d <= 0 {
		return ctx.Err()
	}
	log.Debugf("waiting for rate limit: %s", d)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None never waits.
type None struct{}

func (None) Pace(ctx context.Context) error {
	return ctx.Err()
}

// New builds the pacer named by mode: "sleep", "shared" or "none".
func New(mode string, interval time.Duration) Pacer {
	switch mode {
	case "shared":
		return NewShared(interval)
	case "none":
		return None{}
	default:
		return Sleep(interval)
	}
}
