// ABOUTME: Durable FIFO queue of failed remote writes, replayed when online.
// ABOUTME: Persists the remainder after every replayed op for crash safety.
package syncqueue

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/ironlog/internal/remote"
)

// Persistence is the durable backing of the queue. The local store
// provides it; tests provide an in-memory one.
type Persistence interface {
	LoadQueue() []remote.Operation
	SaveQueue(ops []remote.Operation)
	SetFlushing(flushing bool)
	IsFlushing() bool
}

// Queue holds remote writes that could not be delivered and replays
// them in order. Operations that fail again stay queued; nothing is
// ever dropped on failure.
type Queue struct {
	mu     sync.Mutex
	store  Persistence
	svc    remote.Service
	online func() bool
	logger *log.Logger

	flushing bool
}

// NewQueue builds a queue over a persistence layer and record service.
// A flush flag left behind by a crashed process is cleared so the first
// flush of this process is not wedged.
func NewQueue(store Persistence, svc remote.Service, online func() bool) *Queue {
	store.SetFlushing(false)
	return &Queue{
		store:  store,
		svc:    svc,
		online: online,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "syncqueue"}),
	}
}

// Enqueue appends an operation and persists the queue, then attempts an
// async flush if the device looks online.
func (q *Queue) Enqueue(op remote.Operation) {
	q.mu.Lock()
	ops := append(q.store.LoadQueue(), op)
	q.store.SaveQueue(ops)
	q.mu.Unlock()

	q.logger.Debug("queued operation", "kind", op.Kind, "depth", len(ops))

	if q.online() {
		go q.Flush(context.Background())
	}
}

// Len returns the number of pending operations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.store.LoadQueue())
}

// Clear drops all pending operations. Intended for explicit operator
// use only; queued writes are lost.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.store.SaveQueue(nil)
}

// Flush replays pending operations in FIFO order. Failed operations are
// kept, in order, ahead of any not yet attempted; the remainder is
// persisted after every replay so a crash mid-flush loses nothing. At
// most one flush runs at a time; concurrent calls return immediately,
// as does a flush attempted while offline.
func (q *Queue) Flush(ctx context.Context) {
	if !q.online() {
		return
	}

	q.mu.Lock()
	if q.flushing || q.store.IsFlushing() {
		q.mu.Unlock()
		return
	}
	q.flushing = true
	q.store.SetFlushing(true)

	pending := q.store.LoadQueue()
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.flushing = false
		q.store.SetFlushing(false)
		q.mu.Unlock()
	}()

	if len(pending) == 0 {
		return
	}
	q.logger.Info("flushing sync queue", "depth", len(pending))

	var failed []remote.Operation
	persistedLen := len(pending)
	for i := 0; i < len(pending); i++ {
		op := pending[i]
		if err := op.Apply(ctx, q.svc); err != nil {
			q.logger.Warn("replay failed, keeping queued", "kind", op.Kind, "err", err)
			failed = append(failed, op)
		}
		// Persist the remainder: failures so far, the unattempted tail,
		// and anything enqueued since the last persist.
		q.mu.Lock()
		current := q.store.LoadQueue()
		if len(current) > persistedLen {
			pending = append(pending, current[persistedLen:]...)
		}
		remainder := append(append([]remote.Operation{}, failed...), pending[i+1:]...)
		q.store.SaveQueue(remainder)
		persistedLen = len(remainder)
		q.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
	}

	if len(failed) == 0 {
		q.logger.Info("sync queue drained")
	} else {
		q.logger.Warn("sync queue partially flushed", "remaining", len(failed))
	}
}

// NotifyOnline triggers an async flush. Call when connectivity returns.
func (q *Queue) NotifyOnline() {
	go q.Flush(context.Background())
}

// StartSweeper flushes periodically while online until ctx is done.
func (q *Queue) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if q.online() && q.Len() > 0 {
					q.Flush(ctx)
				}
			}
		}
	}()
}
