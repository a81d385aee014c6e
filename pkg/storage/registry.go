package storage

import (
	"github.com/chris/marketplace-ledger/pkg/models"
)

// AdminManager manages the admin set. Only the owner may remove admins.
type AdminManager interface {
	AddAdmin(caller, target models.Identity) error
	RemoveAdmin(caller, target models.Identity) error
	CheckAdmin(id models.Identity) bool
}

// StoreOwnerChecker is the single question the storefront ledger asks the registry.
type StoreOwnerChecker interface {
	CheckStoreOwnerStatus(id models.Identity) bool
}

// StoreOwnerManager manages store owner requests and approvals.
type StoreOwnerManager interface {
	StoreOwnerChecker

	// RequestStoreOwnerStatus appends the caller to the pending request queue.
	RequestStoreOwnerStatus(caller models.Identity) error
	ApproveStoreOwnerStatus(caller, target models.Identity) error
	RemoveStoreOwnerStatus(caller, target models.Identity) error
	GetRequestedStoreOwnersLength() (int, error)
	GetRequestedStoreOwner(index int) (models.Identity, error)
}

// AccessRegistry combines admin and store owner management with the registry's gate.
type AccessRegistry interface {
	AdminManager
	StoreOwnerManager
	Gated
}
