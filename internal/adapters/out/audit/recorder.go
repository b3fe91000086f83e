// Package audit provides the best-effort audit trail adapter. Entries are
// buffered in memory at record time and flushed to the database by a
// background job, so audit storage latency or failure never touches the
// primary write path.
package audit

import (
	"context"
	"sync"

	"loadflow/internal/core/ports"
)

// Entries beyond this are dropped oldest-first.
const defaultBufferLimit = 10000

// Sink receives flushed audit entries for durable storage.
type Sink interface {
	Write(ctx context.Context, entries []ports.AuditEntry) error
}

// BufferedRecorder implements ports.AuditRecorder with an in-memory queue.
// Record never returns an error; Flush drains the queue into the sink.
type BufferedRecorder struct {
	mu      sync.Mutex
	entries []ports.AuditEntry
	limit   int
	sink    Sink
}

// NewBufferedRecorder creates a recorder flushing into the given sink.
func NewBufferedRecorder(sink Sink) *BufferedRecorder {
	return &BufferedRecorder{
		entries: make([]ports.AuditEntry, 0),
		limit:   defaultBufferLimit,
		sink:    sink,
	}
}

// Record enqueues an entry. Never fails; when the buffer is full the oldest
// entry is dropped to make room.
func (r *BufferedRecorder) Record(_ context.Context, entry ports.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) >= r.limit {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, entry)
	return nil
}

// Pending reports the number of entries waiting for the next flush.
func (r *BufferedRecorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Flush writes the queued entries to the sink. On sink failure the batch is
// requeued ahead of entries recorded during the flush, preserving order for
// the next attempt.
func (r *BufferedRecorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	batch := r.entries
	r.entries = make([]ports.AuditEntry, 0)
	r.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := r.sink.Write(ctx, batch); err != nil {
		r.mu.Lock()
		r.entries = append(batch, r.entries...)
		if len(r.entries) > r.limit {
			r.entries = r.entries[len(r.entries)-r.limit:]
		}
		r.mu.Unlock()
		return err
	}

	return nil
}
