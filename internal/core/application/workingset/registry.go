package workingset

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
)

// ErrRegistryStopped rejects lookups after the registry was torn down.
var ErrRegistryStopped = errors.New("working set registry is stopped")

// LoaderFactory builds a loader scoped to one owner's parcels.
type LoaderFactory func(ownerID kernel.UUID) Loader

// Registry holds one working set per customer, created lazily the first
// time that customer's dashboard asks for it. Each customer owns their own
// copy; the dispatcher set lives outside the registry. The registry itself
// is a refresh/sweep target, so every customer set follows the same cadence
// as the dispatcher set.
type Registry struct {
	factory LoaderFactory
	cfg     Config

	mu      sync.Mutex
	sets    map[kernel.UUID]*WorkingSet
	stopped bool
}

// NewRegistry creates an empty registry over the given loader factory.
func NewRegistry(factory LoaderFactory, cfg Config) *Registry {
	return &Registry{
		factory: factory,
		cfg:     cfg.withDefaults(),
		sets:    make(map[kernel.UUID]*WorkingSet),
	}
}

// ForOwner returns the owner's working set, creating and loading it on
// first sight. A failed initial load still yields the (empty) set: the
// refresh job retries on its next tick.
func (r *Registry) ForOwner(ctx context.Context, ownerID kernel.UUID) (*WorkingSet, error) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil, ErrRegistryStopped
	}

	ws, ok := r.sets[ownerID]
	if !ok {
		ws = New(r.factory(ownerID), r.cfg)
		r.sets[ownerID] = ws
	}
	r.mu.Unlock()

	if !ok {
		if err := ws.Load(ctx); err != nil {
			return ws, err
		}
	}
	return ws, nil
}

// Refresh reloads every registered set. Per-set failures are joined so one
// broken load does not starve the others.
func (r *Registry) Refresh(ctx context.Context) error {
	var errs []error
	for _, ws := range r.snapshot() {
		if err := ws.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sweep expires delivered parcels out of every registered set.
func (r *Registry) Sweep(now time.Time) {
	for _, ws := range r.snapshot() {
		ws.Sweep(now)
	}
}

// Stop tears every set down and rejects further lookups.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	for _, ws := range r.sets {
		ws.Stop()
	}
	r.sets = make(map[kernel.UUID]*WorkingSet)
}

func (r *Registry) snapshot() []*WorkingSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := make([]*WorkingSet, 0, len(r.sets))
	for _, ws := range r.sets {
		sets = append(sets, ws)
	}
	return sets
}
