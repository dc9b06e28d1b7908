package service

import (
	"context"
	"time"
)

// SleepFunc suspends the caller for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// sleepContext is the production SleepFunc.
func sleepContext(ctx context.Context, d time.Duration) error {
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
