package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the opaque address of a caller. The empty string is the zero identity.
type Identity string

// IsZero reports whether the identity is the zero identity.
func (i Identity) IsZero() bool {
	return i == ""
}

// Storefront represents an owned container of products and a custodial balance.
type Storefront struct {
	Id       uuid.UUID   `json:"id"`
	Owner    Identity    `json:"owner"`
	Name     string      `json:"name"`
	Balance  uint64      `json:"balance"`
	Products []uuid.UUID `json:"products"`
}

// Product represents an item listed on a storefront.
type Product struct {
	Id           uuid.UUID `json:"id"`
	StorefrontId uuid.UUID `json:"storefront_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        uint64    `json:"price"`
	Quantity     uint64    `json:"quantity"`
}

// Receipt describes the outcome of a committed purchase.
type Receipt struct {
	StorefrontId uuid.UUID `json:"storefront_id"`
	ProductId    uuid.UUID `json:"product_id"`
	Buyer        Identity  `json:"buyer"`
	Quantity     uint64    `json:"quantity"`
	Total        uint64    `json:"total"`
	Refund       uint64    `json:"refund"`
}

// EntryKind defines the possible kinds of ledger entries.
type EntryKind string

const (
	SALE       EntryKind = "SALE"
	REFUND     EntryKind = "REFUND"
	WITHDRAWAL EntryKind = "WITHDRAWAL"
	CLOSURE    EntryKind = "CLOSURE"
	SHUTDOWN   EntryKind = "SHUTDOWN"
)

// LedgerEntry represents a single entry in the double-entry journal.
// A custodial balance is credited on sale and debited on every payout.
type LedgerEntry struct {
	EntryID      string    `json:"entry_id"`
	StorefrontID uuid.UUID `json:"storefront_id"`
	AccountID    Identity  `json:"account_id"`
	Kind         EntryKind `json:"kind"`
	Debit        uint64    `json:"debit,omitempty"`
	Credit       uint64    `json:"credit,omitempty"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}

// Account represents an external account credited by the payer.
type Account struct {
	Identity  Identity  `json:"identity" dynamodbav:"identity"`
	Balance   uint64    `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
