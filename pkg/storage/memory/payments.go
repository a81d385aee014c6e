package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/chris/marketplace-ledger/pkg/events"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

// PurchaseProduct sells quantity units of a product to buyer. The buyer pays
// paid; the storefront is credited price*quantity and the excess is refunded
// to the buyer before anything is committed. A failed refund aborts the purchase.
func (l *Ledger) PurchaseProduct(ctx context.Context, buyer models.Identity, storefrontID, productID uuid.UUID, quantity, paid uint64) (*models.Receipt, error) {
	receipt, msgs, err := l.purchase(ctx, buyer, storefrontID, productID, quantity, paid)
	if err != nil {
		return nil, err
	}
	l.publish(ctx, msgs...)
	return receipt, nil
}

func (l *Ledger) purchase(ctx context.Context, buyer models.Identity, storefrontID, productID uuid.UUID, quantity, paid uint64) (*models.Receipt, []events.Message, error) {
	release, err := l.enter()
	if err != nil {
		return nil, nil, err
	}
	defer release()

	if buyer.IsZero() {
		return nil, nil, fmt.Errorf("buyer must not be the zero identity: %w", storage.ErrInvalidArgument)
	}

	sf, err := l.lockStorefront(storefrontID)
	if err != nil {
		return nil, nil, err
	}
	defer sf.mu.Unlock()

	p, err := l.productOf(storefrontID, productID)
	if err != nil {
		return nil, nil, err
	}

	// Price and quantity only change under sf.mu, which we hold.
	if quantity > p.Quantity {
		return nil, nil, fmt.Errorf("requested %d of %d in stock: %w", quantity, p.Quantity, storage.ErrInsufficientStock)
	}
	hi, total := bits.Mul64(p.Price, quantity)
	if hi != 0 {
		return nil, nil, fmt.Errorf("price %d times quantity %d overflows: %w", p.Price, quantity, storage.ErrInvalidArgument)
	}
	if paid < total {
		return nil, nil, fmt.Errorf("paid %d, required %d: %w", paid, total, storage.ErrInsufficientPayment)
	}
	if _, carry := bits.Add64(sf.Balance, total, 0); carry != 0 {
		return nil, nil, fmt.Errorf("storefront balance would overflow: %w", storage.ErrInvalidArgument)
	}

	refund := paid - total
	if refund > 0 {
		if err := l.payer.Pay(ctx, buyer, refund); err != nil {
			l.logger.Warn("purchase refund failed", slog.String("buyer", string(buyer)), slog.Any("error", err))
			return nil, nil, transferFailed(buyer, refund, err)
		}
	}

	l.mu.Lock()
	p.Quantity -= quantity
	sf.Balance += total
	newBalance := sf.Balance
	entries := []models.LedgerEntry{
		l.record(storefrontID, buyer, models.SALE, 0, paid, fmt.Sprintf("Purchase of %d x %s", quantity, productID)),
	}
	if refund > 0 {
		entries = append(entries, l.record(storefrontID, buyer, models.REFUND, refund, 0, "Overpayment refund"))
	}
	l.mu.Unlock()

	l.logger.Info("product purchased",
		slog.String("storefront_id", storefrontID.String()),
		slog.String("product_id", productID.String()),
		slog.String("buyer", string(buyer)),
		slog.Uint64("quantity", quantity),
		slog.Uint64("total", total),
		slog.Uint64("refund", refund),
	)
	msgs := append(entryMessages(entries...), balanceMessage(entries[0], events.Credit, total, newBalance))

	return &models.Receipt{
		StorefrontId: storefrontID,
		ProductId:    productID,
		Buyer:        buyer,
		Quantity:     quantity,
		Total:        total,
		Refund:       refund,
	}, msgs, nil
}

// WithdrawStorefrontBalance pays the full storefront balance to its owner and
// returns the amount paid. A zero balance is a no-op.
func (l *Ledger) WithdrawStorefrontBalance(ctx context.Context, caller models.Identity, storefrontID uuid.UUID) (uint64, error) {
	amount, msgs, err := l.withdraw(ctx, caller, storefrontID)
	if err != nil {
		return 0, err
	}
	l.publish(ctx, msgs...)
	return amount, nil
}

func (l *Ledger) withdraw(ctx context.Context, caller models.Identity, storefrontID uuid.UUID) (uint64, []events.Message, error) {
	release, err := l.enter()
	if err != nil {
		return 0, nil, err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, storefrontID)
	if err != nil {
		return 0, nil, err
	}
	defer sf.mu.Unlock()

	amount := sf.Balance
	if amount == 0 {
		return 0, nil, nil
	}
	if err := l.payer.Pay(ctx, caller, amount); err != nil {
		l.logger.Warn("withdrawal failed", slog.String("storefront_id", storefrontID.String()), slog.Any("error", err))
		return 0, nil, transferFailed(caller, amount, err)
	}

	l.mu.Lock()
	sf.Balance = 0
	entry := l.record(storefrontID, caller, models.WITHDRAWAL, amount, 0, "Balance withdrawal")
	l.mu.Unlock()

	l.logger.Info("balance withdrawn", slog.String("storefront_id", storefrontID.String()), slog.Uint64("amount", amount))
	return amount, append(entryMessages(entry), balanceMessage(entry, events.Debit, amount, 0)), nil
}
