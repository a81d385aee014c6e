package storage

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
)

// Gated defines the owner-only circuit breaker shared by the registry and the ledger.
type Gated interface {
	Owner() models.Identity
	Paused() bool
	Pause(caller models.Identity) error
	Unpause(caller models.Identity) error

	// Shutdown permanently disables the component. The ledger pays every
	// custodial balance to its owner first.
	Shutdown(ctx context.Context, caller models.Identity) error
}
