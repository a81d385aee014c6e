package memory

import (
	"fmt"
	"sync"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// Gate is the owner-only circuit breaker embedded by the registry and the ledger.
// Mutating operations hold the read side for their whole duration; pause,
// unpause and shutdown take the write side, so they never interleave with an
// operation in flight.
type Gate struct {
	owner models.Identity

	mu         sync.RWMutex
	paused     bool
	terminated bool
}

// NewGate creates an open gate owned by owner.
func NewGate(owner models.Identity) (*Gate, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("owner must not be the zero identity: %w", storage.ErrInvalidArgument)
	}
	return &Gate{owner: owner}, nil
}

// Owner returns the identity that created the component.
func (g *Gate) Owner() models.Identity {
	return g.owner
}

// Paused reports whether the gate is engaged.
func (g *Gate) Paused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paused
}

// Pause engages the gate. Pausing an already paused gate is a no-op.
func (g *Gate) Pause(caller models.Identity) error {
	return g.setPaused(caller, true)
}

// Unpause releases the gate. Unpausing an open gate is a no-op.
func (g *Gate) Unpause(caller models.Identity) error {
	return g.setPaused(caller, false)
}

func (g *Gate) setPaused(caller models.Identity, paused bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.terminated {
		return storage.ErrTerminated
	}
	if caller != g.owner {
		return fmt.Errorf("caller %s is not the owner: %w", caller, storage.ErrUnauthorized)
	}
	g.paused = paused
	return nil
}

// enter admits a mutating operation. The returned release func must be called
// once the operation has committed or aborted.
func (g *Gate) enter() (func(), error) {
	g.mu.RLock()
	if g.terminated {
		g.mu.RUnlock()
		return nil, storage.ErrTerminated
	}
	if g.paused {
		g.mu.RUnlock()
		return nil, storage.ErrPaused
	}
	return g.mu.RUnlock, nil
}

// view admits a read. Reads stay available while paused.
func (g *Gate) view() (func(), error) {
	g.mu.RLock()
	if g.terminated {
		g.mu.RUnlock()
		return nil, storage.ErrTerminated
	}
	return g.mu.RUnlock, nil
}

// terminate runs drain with exclusive access and marks the gate terminated
// only if drain succeeds. Shutdown is allowed while paused.
func (g *Gate) terminate(caller models.Identity, drain func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.terminated {
		return storage.ErrTerminated
	}
	if caller != g.owner {
		return fmt.Errorf("caller %s is not the owner: %w", caller, storage.ErrUnauthorized)
	}
	if drain != nil {
		if err := drain(); err != nil {
			return err
		}
	}
	g.terminated = true
	return nil
}
