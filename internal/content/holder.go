package content

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Holder publishes the current snapshot. Readers get the live pointer
// through Current; Refresh and Reload build a replacement and swap it,
// serialized under the write lock so concurrent reloads cannot lose an
// update.
type Holder struct {
	store *Store
	log   *slog.Logger

	mu  sync.RWMutex
	cur *Snapshot
}

// NewHolder creates a Holder with an empty snapshot. Call Refresh to
// populate it.
func NewHolder(store *Store, log *slog.Logger) *Holder {
	return &Holder{
		store: store,
		log:   log,
		cur:   &Snapshot{Checksums: map[Section]string{}, LoadedAt: time.Now()},
	}
}

// Current returns the published snapshot. The result must be treated as
// read-only.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// Refresh reloads all four documents and publishes the result.
func (h *Holder) Refresh(ctx context.Context) *Snapshot {
	snap := LoadSnapshot(ctx, h.store, h.log)
	h.mu.Lock()
	h.cur = snap
	h.mu.Unlock()
	return snap
}

// Reload re-reads a single document and publishes a snapshot with that
// slot replaced. A document that disappeared or turned invalid leaves
// the slot empty, matching the full-load behavior.
func (h *Holder) Reload(sec Section) *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	next := h.cur.clone()
	next.clear(sec)
	var mu sync.Mutex
	loadSection(next, &mu, h.store, sec, h.log)
	next.LoadedAt = time.Now()
	h.cur = next
	return next
}
