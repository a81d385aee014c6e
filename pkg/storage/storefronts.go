package storage

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
)

// StorefrontReader defines the read accessors for storefronts.
// Index accessors return uuid.Nil for removed slots.
type StorefrontReader interface {
	GetStorefront(id uuid.UUID) (*models.Storefront, error)
	GetStorefrontCount(owner models.Identity) (int, error)
	GetStorefrontsId(owner models.Identity, index int) (uuid.UUID, error)
	GetStorefrontBalance(id uuid.UUID) (uint64, error)
	GetTotalStorefrontsCount() (int, error)

	// GetBalance returns the aggregate custodial balance across all storefronts.
	GetBalance() (uint64, error)
}

// StorefrontManager defines the interface for creating and removing storefronts.
type StorefrontManager interface {
	CreateStorefront(ctx context.Context, caller models.Identity, name string) (uuid.UUID, error)

	// RemoveStorefront pays out the balance to the caller and tombstones the storefront.
	RemoveStorefront(ctx context.Context, caller models.Identity, id uuid.UUID) error
}

// StorefrontStore combines the reader and manager interfaces.
type StorefrontStore interface {
	StorefrontReader
	StorefrontManager
	Gated
}
