package storage

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
)

// ProductReader defines the read accessors for products.
type ProductReader interface {
	GetProductCount(storefrontID uuid.UUID) (int, error)
	GetProductId(storefrontID uuid.UUID, index int) (uuid.UUID, error)
	GetProduct(productID uuid.UUID) (*models.Product, error)
	GetProductPrice(productID uuid.UUID) (uint64, error)
}

// ProductManager defines the owner-only product operations.
type ProductManager interface {
	// PreviewAddProduct runs every check of AddProduct and returns the id
	// the next AddProduct call would assign, without mutating anything.
	PreviewAddProduct(caller models.Identity, storefrontID uuid.UUID, name, description string, price, quantity uint64) (uuid.UUID, error)
	AddProduct(ctx context.Context, caller models.Identity, storefrontID uuid.UUID, name, description string, price, quantity uint64) (uuid.UUID, error)
	UpdateProductPrice(ctx context.Context, caller models.Identity, storefrontID, productID uuid.UUID, price uint64) error
	RemoveProduct(ctx context.Context, caller models.Identity, storefrontID, productID uuid.UUID) error
}

// ProductStore combines the reader and manager interfaces.
type ProductStore interface {
	ProductReader
	ProductManager
}
