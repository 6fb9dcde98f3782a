package backend

import (
	"context"
	"sync"
	"time"
)

// throttle keeps successive table reloads at least interval apart, so a file
// that keeps changing cannot make the watcher re-read it on every debounce.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval}
}

// wait blocks until the next reload is allowed. It returns false without
// claiming a slot when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := time.Until(t.last.Add(t.interval))
	t.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return false
	}

	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return true
}
