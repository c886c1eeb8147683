package scheduler

import (
	"context"
	"time"
)

// Clock abstracts time so the session loop can run without real waits.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

// RealClock returns a Clock backed by the system time.
func RealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
