// Package clock provides cancellable waits and retry delay policies.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d unless the context ends first, in which case
// it returns the context error.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff computes bounded exponential delays for retry loops.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
}

// Delay returns the delay for the given zero-based attempt. The delay doubles
// per attempt starting from Base and never exceeds Max.
func (b Backoff) Delay(attempt int) time.Duration {
	if b.Base <= 0 {
		return 0
	}
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			return b.Max
		}
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}
