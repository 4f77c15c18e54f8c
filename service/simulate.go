package service

import (
	"context"
	"time"
)

// Simulate stands in for a network round trip. It returns ctx.Err() if the
// caller goes away before d elapses, so no completion is delivered late.
func Simulate(ctx context.Context, d time.Duration) error {
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
