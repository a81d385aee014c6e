package payments

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/chris/marketplace-ledger/pkg/models"
)

// Book is an in-memory set of external accounts. It is used for local runs and tests.
type Book struct {
	mu       sync.Mutex
	accounts map[models.Identity]*models.Account
}

// NewBook creates a new, empty Book.
func NewBook() *Book {
	return &Book{accounts: make(map[models.Identity]*models.Account)}
}

// Make sure we conform to the interface
var _ PayerReader = (*Book)(nil)

// Pay credits amount to the account of to, creating the account if needed.
func (b *Book) Pay(ctx context.Context, to models.Identity, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to.IsZero() {
		return fmt.Errorf("cannot pay the zero identity")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[to]
	if !ok {
		acct = &models.Account{Identity: to}
		b.accounts[to] = acct
	}
	if acct.Balance > math.MaxUint64-amount {
		return fmt.Errorf("account %s would overflow", to)
	}
	acct.Balance += amount
	acct.Version++
	acct.UpdatedAt = time.Now()
	return nil
}

// GetAccount returns a copy of the account. Unknown identities have a zero balance.
func (b *Book) GetAccount(ctx context.Context, id models.Identity) (*models.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[id]
	if !ok {
		return &models.Account{Identity: id}, nil
	}
	cp := *acct
	return &cp, nil
}

// Balance is a shorthand for the current balance of id.
func (b *Book) Balance(id models.Identity) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if acct, ok := b.accounts[id]; ok {
		return acct.Balance
	}
	return 0
}
