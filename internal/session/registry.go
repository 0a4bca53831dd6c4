package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/google/uuid"
)

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry maps session ids to their controllers. Sessions never share
// state; the registry only decides which controller a request talks to.
type Registry struct {
	mu          sync.Mutex
	catalog     *catalog.Catalog
	idleTimeout time.Duration
	opts        []Option
	now         func() time.Time
	sessions    map[uuid.UUID]*entry
}

// NewRegistry creates an empty registry. A zero idleTimeout disables
// eviction. opts are applied to every controller the registry creates.
func NewRegistry(cat *catalog.Catalog, idleTimeout time.Duration, opts ...Option) *Registry {
	return &Registry{
		catalog:     cat,
		idleTimeout: idleTimeout,
		opts:        opts,
		now:         time.Now,
		sessions:    make(map[uuid.UUID]*entry),
	}
}

// Get returns the controller for id, creating an empty one on first use.
func (r *Registry) Get(id uuid.UUID) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		e = &entry{ctrl: NewController(r.catalog, r.opts...)}
		r.sessions[id] = e
	}
	e.lastSeen = r.now()
	return e.ctrl
}

// Lookup returns the controller for id without creating it.
func (r *Registry) Lookup(id uuid.UUID) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return e.ctrl, true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the idle timeout and returns how
// many were removed.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTimeout)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (r *Registry) RunJanitor(ctx context.Context, interval time.Duration) error {
	if r.idleTimeout <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("session janitor: evicted %d idle sessions", n)
			}
		}
	}
}
