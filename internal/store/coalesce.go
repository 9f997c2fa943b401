// ABOUTME: Debounced remote writer for rapid successive session edits.
// ABOUTME: Only the final state of a burst reaches the remote service.
package store

import (
	"sync"
	"time"
)

// coalescingWriter delays a write so that a burst of edits (logging set
// after set) produces one remote write carrying the final state.
type coalescingWriter struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func newCoalescingWriter(delay time.Duration) *coalescingWriter {
	return &coalescingWriter{delay: delay}
}

// Write schedules fn after the debounce delay, replacing any write
// already pending.
func (w *coalescingWriter) Write(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.fn = fn
	w.timer = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		fn := w.fn
		w.fn = nil
		w.timer = nil
		w.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

// Flush runs any pending write immediately.
func (w *coalescingWriter) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fn := w.fn
	w.fn = nil
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels any pending write without running it.
func (w *coalescingWriter) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.fn = nil
}
