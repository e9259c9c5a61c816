// Package ratelimit implements the fixed-window per-key counter used to
// throttle message sends. Counters live in process memory and are lost on
// restart; the limiter throttles abuse, it is not a correctness invariant.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Window is a fixed-window counter: limit actions per window per key.
// Fixed, not sliding, so a burst straddling a window boundary can admit up
// to 2x the limit. That is the documented behavior of this limiter.
type Window struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewWindow(limit int, window time.Duration) *Window {
	return &Window{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether key may perform another action in the current
// window, counting the action if so.
func (w *Window) Allow(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	e, ok := w.entries[key]
	if !ok || now.After(e.resetAt) {
		w.entries[key] = &entry{count: 1, resetAt: now.Add(w.window)}
		return true
	}
	if e.count < w.limit {
		e.count++
		return true
	}
	return false
}
