package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

// CreateStorefront creates an empty storefront owned by caller. The caller
// must be an approved store owner.
func (l *Ledger) CreateStorefront(ctx context.Context, caller models.Identity, name string) (uuid.UUID, error) {
	release, err := l.enter()
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	if !l.registry.CheckStoreOwnerStatus(caller) {
		l.logger.Debug("create storefront rejected", slog.String("caller", string(caller)))
		return uuid.Nil, fmt.Errorf("caller %s is not an approved store owner: %w", caller, storage.ErrUnauthorized)
	}

	l.mu.Lock()
	id := l.storefrontID(caller, len(l.byOwner[caller]))
	l.storefronts[id] = &storefront{
		Storefront: models.Storefront{
			Id:       id,
			Owner:    caller,
			Name:     name,
			Products: []uuid.UUID{},
		},
	}
	l.byOwner[caller] = append(l.byOwner[caller], id)
	l.created++
	l.mu.Unlock()

	l.logger.Info("storefront created", slog.String("storefront_id", id.String()), slog.String("owner", string(caller)))
	return id, nil
}

// RemoveStorefront pays the storefront balance to its owner, then tombstones
// the owner slot and drops the storefront and its products from lookup.
// A failed payout aborts the removal.
func (l *Ledger) RemoveStorefront(ctx context.Context, caller models.Identity, id uuid.UUID) error {
	msgs, err := l.removeStorefront(ctx, caller, id)
	if err != nil {
		return err
	}
	l.publish(ctx, msgs...)
	return nil
}

func (l *Ledger) removeStorefront(ctx context.Context, caller models.Identity, id uuid.UUID) ([]events.Message, error) {
	release, err := l.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, id)
	if err != nil {
		return nil, err
	}
	defer sf.mu.Unlock()

	payout := sf.Balance
	if payout > 0 {
		if err := l.payer.Pay(ctx, caller, payout); err != nil {
			l.logger.Warn("storefront payout failed", slog.String("storefront_id", id.String()), slog.Any("error", err))
			return nil, transferFailed(caller, payout, err)
		}
	}

	l.mu.Lock()
	var entry models.LedgerEntry
	if payout > 0 {
		entry = l.record(id, caller, models.CLOSURE, payout, 0, "Storefront removal payout")
	}
	sf.Balance = 0
	sf.removed = true
	for _, pid := range sf.Products {
		if pid != uuid.Nil {
			delete(l.products, pid)
		}
	}
	slots := l.byOwner[caller]
	for i, sid := range slots {
		if sid == id {
			slots[i] = uuid.Nil
			break
		}
	}
	delete(l.storefronts, id)
	l.mu.Unlock()

	l.logger.Info("storefront removed", slog.String("storefront_id", id.String()), slog.Uint64("paid_out", payout))
	var msgs []events.Message
	if payout > 0 {
		msgs = append(entryMessages(entry), balanceMessage(entry, events.Debit, payout, 0))
	}
	msgs = append(msgs, events.Message{
		Type: events.MessageTypeStorefrontRemoved,
		Payload: events.StorefrontRemovedPayload{
			StorefrontID: id,
			Owner:        string(caller),
			PaidOut:      payout,
		},
	})
	return msgs, nil
}

// GetStorefront returns a copy of a live storefront.
func (l *Ledger) GetStorefront(id uuid.UUID) (*models.Storefront, error) {
	release, err := l.view()
	if err != nil {
		return nil, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	sf, ok := l.storefronts[id]
	if !ok {
		return nil, fmt.Errorf("storefront %s: %w", id, storage.ErrNotFound)
	}
	out := sf.Storefront
	out.Products = append([]uuid.UUID(nil), sf.Products...)
	return &out, nil
}

// GetStorefrontCount returns the number of storefront slots of owner,
// tombstones included.
func (l *Ledger) GetStorefrontCount(owner models.Identity) (int, error) {
	release, err := l.view()
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byOwner[owner]), nil
}

// GetStorefrontsId returns the storefront id in slot index of owner, or
// uuid.Nil if that storefront was removed.
func (l *Ledger) GetStorefrontsId(owner models.Identity, index int) (uuid.UUID, error) {
	release, err := l.view()
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	slots := l.byOwner[owner]
	if index < 0 || index >= len(slots) {
		return uuid.Nil, fmt.Errorf("storefront index %d out of range for %s: %w", index, owner, storage.ErrInvalidArgument)
	}
	return slots[index], nil
}

func (l *Ledger) GetStorefrontBalance(id uuid.UUID) (uint64, error) {
	release, err := l.view()
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	sf, ok := l.storefronts[id]
	if !ok {
		return 0, fmt.Errorf("storefront %s: %w", id, storage.ErrNotFound)
	}
	return sf.Balance, nil
}

// GetTotalStorefrontsCount returns how many storefronts were ever created.
func (l *Ledger) GetTotalStorefrontsCount() (int, error) {
	release, err := l.view()
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.created, nil
}

// GetBalance returns the aggregate custodial balance across all storefronts.
// An aggregate that does not fit in a uint64 is ErrInvalidArgument.
func (l *Ledger) GetBalance() (uint64, error) {
	release, err := l.view()
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.aggregateBalance()
}
