package service

import (
	"context"
	"time"
)

// WaitPolicy is the injectable inter-message delay used by the batch
// runner. The default implementation sleeps for real; tests substitute a
// no-op so batch behavior can be asserted without wall-clock delays.
type WaitPolicy interface {
	Wait(ctx context.Context, d time.Duration) error
}

type sleepWait struct{}

// NewSleepWait returns the production wait policy.
func NewSleepWait() WaitPolicy {
	return sleepWait{}
}

func (sleepWait) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
