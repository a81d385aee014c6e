package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"strconv"
	"sync"
	"time"

	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/payments"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

// storefront wraps the storefront record with its own lock. Fields are written
// only while holding both storefront.mu and Ledger.mu, so holding either one
// is enough to read them.
type storefront struct {
	mu      sync.Mutex
	removed bool
	models.Storefront
}

// Ledger is the in-memory storefront ledger. Lock order is gate, then
// storefront, then Ledger.mu; Ledger.mu is never held while waiting on a
// storefront lock.
type Ledger struct {
	*Gate
	registry  storage.StoreOwnerChecker
	payer     payments.Payer
	publisher events.Publisher
	logger    *slog.Logger
	namespace uuid.UUID

	mu          sync.RWMutex
	storefronts map[uuid.UUID]*storefront
	products    map[uuid.UUID]*models.Product
	byOwner     map[models.Identity][]uuid.UUID
	created     int
	journal     []models.LedgerEntry
}

// NewLedger creates a new Ledger owned by owner. Storefront creation is
// authorized against registry; payouts and refunds go through payer.
func NewLedger(owner models.Identity, registry storage.StoreOwnerChecker, payer payments.Payer, publisher events.Publisher, logger *slog.Logger) (*Ledger, error) {
	gate, err := NewGate(owner)
	if err != nil {
		return nil, err
	}
	if registry == nil || payer == nil {
		return nil, fmt.Errorf("registry and payer are required: %w", storage.ErrInvalidArgument)
	}
	if publisher == nil {
		publisher = &events.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		Gate:        gate,
		registry:    registry,
		payer:       payer,
		publisher:   publisher,
		logger:      logger.With(slog.String("component", "ledger")),
		namespace:   uuid.New(),
		storefronts: make(map[uuid.UUID]*storefront),
		products:    make(map[uuid.UUID]*models.Product),
		byOwner:     make(map[models.Identity][]uuid.UUID),
	}, nil
}

// Make sure we conform to the interface
var _ storage.ApiStore = (*Ledger)(nil)

// storefrontID derives the id of the n-th storefront of owner. Owner slots are
// never compacted, so n is unique per owner.
func (l *Ledger) storefrontID(owner models.Identity, n int) uuid.UUID {
	return uuid.NewSHA1(l.namespace, []byte("storefront/"+string(owner)+"/"+strconv.Itoa(n)))
}

// productID derives the id of the n-th product slot of a storefront.
func (l *Ledger) productID(storefrontID uuid.UUID, n int) uuid.UUID {
	return uuid.NewSHA1(l.namespace, []byte("product/"+storefrontID.String()+"/"+strconv.Itoa(n)))
}

// lockStorefront returns the live storefront with its lock held.
func (l *Ledger) lockStorefront(id uuid.UUID) (*storefront, error) {
	l.mu.RLock()
	sf, ok := l.storefronts[id]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storefront %s: %w", id, storage.ErrNotFound)
	}

	sf.mu.Lock()
	if sf.removed {
		sf.mu.Unlock()
		return nil, fmt.Errorf("storefront %s: %w", id, storage.ErrNotFound)
	}
	return sf, nil
}

// lockOwnedStorefront is lockStorefront plus the ownership check.
func (l *Ledger) lockOwnedStorefront(caller models.Identity, id uuid.UUID) (*storefront, error) {
	sf, err := l.lockStorefront(id)
	if err != nil {
		return nil, err
	}
	if sf.Owner != caller {
		sf.mu.Unlock()
		l.logger.Debug("storefront operation rejected", slog.String("caller", string(caller)), slog.String("storefront_id", id.String()))
		return nil, fmt.Errorf("caller %s does not own storefront %s: %w", caller, id, storage.ErrUnauthorized)
	}
	return sf, nil
}

// productOf resolves productID and checks it belongs to storefrontID.
func (l *Ledger) productOf(storefrontID, productID uuid.UUID) (*models.Product, error) {
	l.mu.RLock()
	p, ok := l.products[productID]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, storage.ErrNotFound)
	}
	if p.StorefrontId != storefrontID {
		return nil, fmt.Errorf("product %s does not belong to storefront %s: %w", productID, storefrontID, storage.ErrInvalidArgument)
	}
	return p, nil
}

// record appends a journal entry. Callers hold l.mu.
func (l *Ledger) record(storefrontID uuid.UUID, account models.Identity, kind models.EntryKind, debit, credit uint64, description string) models.LedgerEntry {
	entry := models.LedgerEntry{
		EntryID:      uuid.New().String(),
		StorefrontID: storefrontID,
		AccountID:    account,
		Kind:         kind,
		Debit:        debit,
		Credit:       credit,
		Description:  description,
		Timestamp:    time.Now(),
	}
	l.journal = append(l.journal, entry)
	return entry
}

// publish reports committed changes. Callers must not hold any ledger or
// storefront lock. A failed publish never undoes the commit.
func (l *Ledger) publish(ctx context.Context, msgs ...events.Message) {
	for _, msg := range msgs {
		if err := l.publisher.Publish(ctx, msg); err != nil {
			l.logger.Error("failed to publish event", slog.String("type", string(msg.Type)), slog.Any("error", err))
		}
	}
}

// entryMessages wraps committed journal entries for archiving.
func entryMessages(entries ...models.LedgerEntry) []events.Message {
	msgs := make([]events.Message, 0, len(entries))
	for _, entry := range entries {
		msgs = append(msgs, events.Message{Type: events.MessageTypeLedgerEntry, Payload: entry})
	}
	return msgs
}

func balanceMessage(entry models.LedgerEntry, direction events.Direction, amount, newBalance uint64) events.Message {
	return events.Message{
		Type: events.MessageTypeBalanceUpdate,
		Payload: events.BalanceUpdatePayload{
			StorefrontID: entry.StorefrontID,
			EntryID:      entry.EntryID,
			Direction:    direction,
			Amount:       amount,
			NewBalance:   newBalance,
		},
	}
}

// aggregateBalance sums every storefront balance. Callers hold l.mu.
func (l *Ledger) aggregateBalance() (uint64, error) {
	var total uint64
	for _, sf := range l.storefronts {
		var carry uint64
		total, carry = bits.Add64(total, sf.Balance, 0)
		if carry != 0 {
			return 0, fmt.Errorf("aggregate storefront balance overflows: %w", storage.ErrInvalidArgument)
		}
	}
	return total, nil
}

func transferFailed(to models.Identity, amount uint64, err error) error {
	return fmt.Errorf("%w: paying %d to %s: %w", storage.ErrTransferFailed, amount, to, err)
}

// ListLedgerEntries returns up to limit journal entries, newest first. A limit
// of zero returns every entry.
func (l *Ledger) ListLedgerEntries(limit int) ([]models.LedgerEntry, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, storage.ErrInvalidArgument)
	}
	release, err := l.view()
	if err != nil {
		return nil, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.journal)
	if limit == 0 || limit > n {
		limit = n
	}
	entries := make([]models.LedgerEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		entries = append(entries, l.journal[i])
	}
	return entries, nil
}

// Shutdown pays the aggregate custodial balance to the owner in a single
// transfer and permanently disables the ledger. If the transfer fails, or the
// aggregate does not fit in a uint64, the ledger stays live and unchanged.
func (l *Ledger) Shutdown(ctx context.Context, caller models.Identity) error {
	var total uint64
	var entries []models.LedgerEntry
	err := l.terminate(caller, func() error {
		var err error
		l.mu.RLock()
		total, err = l.aggregateBalance()
		l.mu.RUnlock()
		if err != nil {
			return fmt.Errorf("withdraw storefront balances before shutting down: %w", err)
		}

		if total > 0 {
			if err := l.payer.Pay(ctx, caller, total); err != nil {
				return transferFailed(caller, total, err)
			}
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		for id, sf := range l.storefronts {
			if sf.Balance == 0 {
				continue
			}
			entries = append(entries, l.record(id, caller, models.SHUTDOWN, sf.Balance, 0, "Shutdown payout to owner"))
			sf.Balance = 0
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.logger.Info("ledger shut down", slog.String("caller", string(caller)), slog.Uint64("paid_out", total))
	l.publish(ctx, entryMessages(entries...)...)
	return nil
}
