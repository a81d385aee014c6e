package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

// PreviewAddProduct runs every check AddProduct runs and returns the id the
// next AddProduct on this storefront would assign. Nothing is mutated.
func (l *Ledger) PreviewAddProduct(caller models.Identity, storefrontID uuid.UUID, name, description string, price, quantity uint64) (uuid.UUID, error) {
	release, err := l.enter()
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, storefrontID)
	if err != nil {
		return uuid.Nil, err
	}
	defer sf.mu.Unlock()

	return l.productID(storefrontID, len(sf.Products)), nil
}

// AddProduct lists a new product on a storefront owned by caller and returns its id.
func (l *Ledger) AddProduct(ctx context.Context, caller models.Identity, storefrontID uuid.UUID, name, description string, price, quantity uint64) (uuid.UUID, error) {
	release, err := l.enter()
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, storefrontID)
	if err != nil {
		return uuid.Nil, err
	}
	defer sf.mu.Unlock()

	id := l.productID(storefrontID, len(sf.Products))

	l.mu.Lock()
	l.products[id] = &models.Product{
		Id:           id,
		StorefrontId: storefrontID,
		Name:         name,
		Description:  description,
		Price:        price,
		Quantity:     quantity,
	}
	sf.Products = append(sf.Products, id)
	l.mu.Unlock()

	l.logger.Info("product added",
		slog.String("storefront_id", storefrontID.String()),
		slog.String("product_id", id.String()),
		slog.Uint64("price", price),
		slog.Uint64("quantity", quantity),
	)
	return id, nil
}

// UpdateProductPrice sets the price of a product. There is no bound on the new price.
func (l *Ledger) UpdateProductPrice(ctx context.Context, caller models.Identity, storefrontID, productID uuid.UUID, price uint64) error {
	release, err := l.enter()
	if err != nil {
		return err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, storefrontID)
	if err != nil {
		return err
	}
	defer sf.mu.Unlock()

	p, err := l.productOf(storefrontID, productID)
	if err != nil {
		return err
	}

	l.mu.Lock()
	old := p.Price
	p.Price = price
	l.mu.Unlock()

	l.logger.Info("product price updated", slog.String("product_id", productID.String()), slog.Uint64("old_price", old), slog.Uint64("new_price", price))
	return nil
}

// RemoveProduct tombstones the product slot and drops the product from lookup.
func (l *Ledger) RemoveProduct(ctx context.Context, caller models.Identity, storefrontID, productID uuid.UUID) error {
	release, err := l.enter()
	if err != nil {
		return err
	}
	defer release()

	sf, err := l.lockOwnedStorefront(caller, storefrontID)
	if err != nil {
		return err
	}
	defer sf.mu.Unlock()

	if _, err := l.productOf(storefrontID, productID); err != nil {
		return err
	}

	l.mu.Lock()
	for i, pid := range sf.Products {
		if pid == productID {
			sf.Products[i] = uuid.Nil
			break
		}
	}
	delete(l.products, productID)
	l.mu.Unlock()

	l.logger.Info("product removed", slog.String("storefront_id", storefrontID.String()), slog.String("product_id", productID.String()))
	return nil
}

func (l *Ledger) GetProductCount(storefrontID uuid.UUID) (int, error) {
	release, err := l.view()
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	sf, ok := l.storefronts[storefrontID]
	if !ok {
		return 0, fmt.Errorf("storefront %s: %w", storefrontID, storage.ErrNotFound)
	}
	return len(sf.Products), nil
}

// GetProductId returns the product id in slot index, or uuid.Nil for a removed product.
func (l *Ledger) GetProductId(storefrontID uuid.UUID, index int) (uuid.UUID, error) {
	release, err := l.view()
	if err != nil {
		return uuid.Nil, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	sf, ok := l.storefronts[storefrontID]
	if !ok {
		return uuid.Nil, fmt.Errorf("storefront %s: %w", storefrontID, storage.ErrNotFound)
	}
	if index < 0 || index >= len(sf.Products) {
		return uuid.Nil, fmt.Errorf("product index %d out of range: %w", index, storage.ErrInvalidArgument)
	}
	return sf.Products[index], nil
}

// GetProduct returns a copy of a live product.
func (l *Ledger) GetProduct(productID uuid.UUID) (*models.Product, error) {
	release, err := l.view()
	if err != nil {
		return nil, err
	}
	defer release()

	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, storage.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (l *Ledger) GetProductPrice(productID uuid.UUID) (uint64, error) {
	p, err := l.GetProduct(productID)
	if err != nil {
		return 0, err
	}
	return p.Price, nil
}
