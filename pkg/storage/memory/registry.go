package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// Registry is the in-memory access registry: admins, pending store owner
// requests and approved store owners.
type Registry struct {
	*Gate
	logger *slog.Logger

	mu       sync.RWMutex
	admins   map[models.Identity]struct{}
	pending  []models.Identity
	approved map[models.Identity]struct{}
}

// NewRegistry creates a new Registry owned by owner. The owner may manage
// admins but is not itself enrolled as an admin.
func NewRegistry(owner models.Identity, logger *slog.Logger) (*Registry, error) {
	gate, err := NewGate(owner)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		Gate:     gate,
		logger:   logger.With(slog.String("component", "registry")),
		admins:   make(map[models.Identity]struct{}),
		approved: make(map[models.Identity]struct{}),
	}, nil
}

// Make sure we conform to the interface
var _ storage.AccessRegistry = (*Registry)(nil)

// AddAdmin adds target to the admin set. The caller must be the owner or an admin.
func (r *Registry) AddAdmin(caller, target models.Identity) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.Owner() && !r.isAdmin(caller) {
		r.logger.Debug("add admin rejected", slog.String("caller", string(caller)))
		return fmt.Errorf("caller %s may not add admins: %w", caller, storage.ErrUnauthorized)
	}
	if target.IsZero() {
		return fmt.Errorf("admin must not be the zero identity: %w", storage.ErrInvalidArgument)
	}

	r.admins[target] = struct{}{}
	r.logger.Info("admin added", slog.String("caller", string(caller)), slog.String("admin", string(target)))
	return nil
}

// RemoveAdmin removes target from the admin set. Only the owner may remove admins.
func (r *Registry) RemoveAdmin(caller, target models.Identity) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	if caller != r.Owner() {
		r.logger.Debug("remove admin rejected", slog.String("caller", string(caller)))
		return fmt.Errorf("caller %s may not remove admins: %w", caller, storage.ErrUnauthorized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.admins, target)
	r.logger.Info("admin removed", slog.String("admin", string(target)))
	return nil
}

// CheckAdmin reports admin set membership. The owner is not reported as an admin
// unless it was added explicitly.
func (r *Registry) CheckAdmin(id models.Identity) bool {
	release, err := r.view()
	if err != nil {
		return false
	}
	defer release()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isAdmin(id)
}

func (r *Registry) isAdmin(id models.Identity) bool {
	_, ok := r.admins[id]
	return ok
}

// RequestStoreOwnerStatus appends caller to the pending queue. Repeated requests
// are kept as duplicates.
func (r *Registry) RequestStoreOwnerStatus(caller models.Identity) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	if caller.IsZero() {
		return fmt.Errorf("requester must not be the zero identity: %w", storage.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, caller)
	r.logger.Info("store owner status requested", slog.String("caller", string(caller)))
	return nil
}

// ApproveStoreOwnerStatus approves target. The caller must be an admin; target
// need not have a pending request.
func (r *Registry) ApproveStoreOwnerStatus(caller, target models.Identity) error {
	return r.setStoreOwner(caller, target, true)
}

// RemoveStoreOwnerStatus revokes target's approval. The caller must be an admin.
func (r *Registry) RemoveStoreOwnerStatus(caller, target models.Identity) error {
	return r.setStoreOwner(caller, target, false)
}

func (r *Registry) setStoreOwner(caller, target models.Identity, approved bool) error {
	release, err := r.enter()
	if err != nil {
		return err
	}
	defer release()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdmin(caller) {
		r.logger.Debug("store owner change rejected", slog.String("caller", string(caller)))
		return fmt.Errorf("caller %s is not an admin: %w", caller, storage.ErrUnauthorized)
	}
	if target.IsZero() {
		return fmt.Errorf("store owner must not be the zero identity: %w", storage.ErrInvalidArgument)
	}

	if approved {
		r.approved[target] = struct{}{}
	} else {
		delete(r.approved, target)
	}
	r.logger.Info("store owner status changed",
		slog.String("caller", string(caller)),
		slog.String("store_owner", string(target)),
		slog.Bool("approved", approved),
	)
	return nil
}

// CheckStoreOwnerStatus reports whether id is an approved store owner.
func (r *Registry) CheckStoreOwnerStatus(id models.Identity) bool {
	release, err := r.view()
	if err != nil {
		return false
	}
	defer release()

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.approved[id]
	return ok
}

// GetRequestedStoreOwnersLength returns the length of the pending queue, duplicates included.
func (r *Registry) GetRequestedStoreOwnersLength() (int, error) {
	release, err := r.view()
	if err != nil {
		return 0, err
	}
	defer release()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pending), nil
}

// GetRequestedStoreOwner returns the requester at index in insertion order.
func (r *Registry) GetRequestedStoreOwner(index int) (models.Identity, error) {
	release, err := r.view()
	if err != nil {
		return "", err
	}
	defer release()

	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.pending) {
		return "", fmt.Errorf("request index %d out of range: %w", index, storage.ErrInvalidArgument)
	}
	return r.pending[index], nil
}

// Shutdown permanently disables the registry. The registry holds no funds.
func (r *Registry) Shutdown(ctx context.Context, caller models.Identity) error {
	if err := r.terminate(caller, nil); err != nil {
		return err
	}
	r.logger.Info("registry shut down", slog.String("caller", string(caller)))
	return nil
}
