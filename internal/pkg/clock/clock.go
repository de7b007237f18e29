// Package clock abstracts wall time so the simulated latencies can be
// collapsed in tests.
package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Instant never blocks; tests use it in place of Real.
type Instant struct{}

func (Instant) Now() time.Time {
	return time.Now()
}

func (Instant) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
