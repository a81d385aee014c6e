package payments

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
)

// Payer is the host's fund transfer primitive. Any returned error means the
// funds were not delivered and the calling operation must abort.
type Payer interface {
	Pay(ctx context.Context, to models.Identity, amount uint64) error
}

// AccountReader exposes external account balances.
type AccountReader interface {
	GetAccount(ctx context.Context, id models.Identity) (*models.Account, error)
}

// PayerReader is a Payer whose accounts can also be read back.
type PayerReader interface {
	Payer
	AccountReader
}
