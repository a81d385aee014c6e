package storage

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
)

// PaymentStore defines the money-moving storefront operations.
type PaymentStore interface {
	// PurchaseProduct is open to any caller. Overpayment is refunded to the buyer
	// within the same operation.
	PurchaseProduct(ctx context.Context, buyer models.Identity, storefrontID, productID uuid.UUID, quantity, paid uint64) (*models.Receipt, error)

	// WithdrawStorefrontBalance pays the whole balance to the storefront owner.
	// A zero balance is a successful no-op.
	WithdrawStorefrontBalance(ctx context.Context, caller models.Identity, storefrontID uuid.UUID) (uint64, error)
}
