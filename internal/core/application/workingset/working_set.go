// Package workingset maintains the in-memory snapshot of parcels a dashboard
// session works against. The snapshot is loaded from the read side, merged
// with remote updates as they arrive, and partitioned into role-facing
// categories on demand.
//
// Time never flows implicitly here: ApplyRemoteUpdate and Sweep take the
// current time as an argument, and the cron jobs drive them. That keeps the
// delivered-parcel retention window testable without real timers.
package workingset

import (
	"context"
	"sync"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/queries"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
)

const (
	// DefaultLoadTimeout bounds one snapshot load. A slow or dead read side
	// resolves to an empty set instead of hanging the dashboard.
	DefaultLoadTimeout = 5 * time.Second

	// DefaultNoticeWindow is how long a just-delivered parcel shows its
	// success notice.
	DefaultNoticeWindow = 5 * time.Second

	// DefaultRemovalWindow is how long a delivered parcel stays visible
	// before Sweep removes it.
	DefaultRemovalWindow = 2 * time.Minute
)

// Loader is the read-side port feeding the working set.
type Loader interface {
	LoadParcels(ctx context.Context) ([]queries.ParcelSummary, error)
}

// Config carries the working set's time windows. Zero values fall back to
// the defaults; tests shrink them.
type Config struct {
	LoadTimeout   time.Duration
	NoticeWindow  time.Duration
	RemovalWindow time.Duration
}

func (c Config) withDefaults() Config {
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = DefaultLoadTimeout
	}
	if c.NoticeWindow <= 0 {
		c.NoticeWindow = DefaultNoticeWindow
	}
	if c.RemovalWindow <= 0 {
		c.RemovalWindow = DefaultRemovalWindow
	}
	return c
}

// Categorized is the partition of the working set into dashboard buckets.
// The buckets are pairwise disjoint; cancelled and unparseable parcels
// appear in none of them.
type Categorized struct {
	Available []queries.ParcelSummary
	Active    []queries.ParcelSummary
	Completed []queries.ParcelSummary
}

type entry struct {
	summary     queries.ParcelSummary
	noticeUntil time.Time
	removeAt    time.Time
}

// WorkingSet owns one session's parcel snapshot.
// All methods are safe for concurrent use.
type WorkingSet struct {
	loader Loader
	cfg    Config

	mu      sync.Mutex
	entries map[kernel.UUID]entry
	stopped bool
}

// New creates an empty working set over the given loader.
func New(loader Loader, cfg Config) *WorkingSet {
	return &WorkingSet{
		loader:  loader,
		cfg:     cfg.withDefaults(),
		entries: make(map[kernel.UUID]entry),
	}
}

// Load replaces the snapshot with a fresh read-side load, bounded by the
// configured timeout. On failure or timeout the snapshot becomes empty and
// the error is returned; Load never hangs past the bound.
func (ws *WorkingSet) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ws.cfg.LoadTimeout)
	defer cancel()

	summaries, err := ws.loader.LoadParcels(ctx)

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.stopped {
		return nil
	}

	ws.entries = make(map[kernel.UUID]entry, len(summaries))
	if err != nil {
		return err
	}

	for _, s := range summaries {
		ws.entries[s.ID] = entry{summary: s}
	}
	return nil
}

// Refresh is the periodic reload path used by the cron job. Identical to
// Load; safe to interleave with merges and sweeps.
func (ws *WorkingSet) Refresh(ctx context.Context) error {
	return ws.Load(ctx)
}

// ApplyRemoteUpdate merges one pushed parcel update into the snapshot at the
// given time. Updates are applied in arrival order; an update older than what
// the set already holds (by the repository's updated_at) is discarded.
//
// A cancelled parcel leaves the set immediately. A delivered parcel stays
// visible with an active success notice for the notice window and is
// scheduled for removal when the removal window elapses.
func (ws *WorkingSet) ApplyRemoteUpdate(u queries.ParcelSummary, now time.Time) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.stopped {
		return
	}

	if existing, ok := ws.entries[u.ID]; ok {
		if !existing.summary.UpdatedAt.IsZero() && !u.UpdatedAt.IsZero() &&
			u.UpdatedAt.Before(existing.summary.UpdatedAt) {
			return
		}
	}

	switch u.Status {
	case parcel.Cancelled:
		delete(ws.entries, u.ID)
	case parcel.Delivered:
		ws.entries[u.ID] = entry{
			summary:     u,
			noticeUntil: now.Add(ws.cfg.NoticeWindow),
			removeAt:    now.Add(ws.cfg.RemovalWindow),
		}
	default:
		e := ws.entries[u.ID]
		e.summary = u
		ws.entries[u.ID] = e
	}
}

// Sweep removes every entry whose removal deadline has passed.
// Driven by the per-second cron job; idempotent.
func (ws *WorkingSet) Sweep(now time.Time) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.stopped {
		return
	}

	for id, e := range ws.entries {
		if !e.removeAt.IsZero() && !now.Before(e.removeAt) {
			delete(ws.entries, id)
		}
	}
}

// NoticeActive reports whether the delivered-success notice for the given
// parcel is still showing at the given time.
func (ws *WorkingSet) NoticeActive(id kernel.UUID, now time.Time) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	e, ok := ws.entries[id]
	return ok && !e.noticeUntil.IsZero() && now.Before(e.noticeUntil)
}

// Remove drops one parcel from the snapshot.
func (ws *WorkingSet) Remove(id kernel.UUID) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	delete(ws.entries, id)
}

// Contains reports whether the parcel is currently in the snapshot.
func (ws *WorkingSet) Contains(id kernel.UUID) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	_, ok := ws.entries[id]
	return ok
}

// Snapshot returns a copy of every parcel currently in the set.
func (ws *WorkingSet) Snapshot() []queries.ParcelSummary {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	summaries := make([]queries.ParcelSummary, 0, len(ws.entries))
	for _, e := range ws.entries {
		summaries = append(summaries, e.summary)
	}
	return summaries
}

// Categorize partitions the snapshot into the dashboard buckets:
// pending-pickup parcels are available for dispatch, in-transit parcels are
// active, delivered parcels (including those inside their retention window)
// are completed. Cancelled or unparseable entries land in no bucket.
func (ws *WorkingSet) Categorize() Categorized {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var c Categorized
	for _, e := range ws.entries {
		switch e.summary.Status {
		case parcel.PendingPickup:
			c.Available = append(c.Available, e.summary)
		case parcel.InTransit:
			c.Active = append(c.Active, e.summary)
		case parcel.Delivered:
			c.Completed = append(c.Completed, e.summary)
		}
	}
	return c
}

// Stop tears the working set down: the snapshot empties, pending removal
// deadlines are cleared, and later loads, merges and sweeps become no-ops.
func (ws *WorkingSet) Stop() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.stopped = true
	ws.entries = make(map[kernel.UUID]entry)
}
