// Package api holds the request and response bodies of the HTTP API.
package api

import (
	"time"

	"github.com/google/uuid"
)

// IdentityRequest names the target identity of a registry operation.
type IdentityRequest struct {
	Identity string `json:"identity" validate:"required,max=256"`
}

// RoleStatus reports whether an identity holds a role.
type RoleStatus struct {
	Identity string `json:"identity"`
	Granted  bool   `json:"granted"`
}

type StoreOwnerRequests struct {
	Count      int      `json:"count"`
	Requesters []string `json:"requesters"`
}

// GateStatus describes a pausable component.
type GateStatus struct {
	Owner  string `json:"owner"`
	Paused bool   `json:"paused"`
}

type NewStorefront struct {
	Name string `json:"name" validate:"required,max=128"`
}

type Storefront struct {
	Id       uuid.UUID   `json:"id"`
	Owner    string      `json:"owner"`
	Name     string      `json:"name"`
	Balance  uint64      `json:"balance"`
	Products []uuid.UUID `json:"products"`
}

// StorefrontSlots lists an owner's storefront slots. Removed storefronts are
// reported as the nil UUID.
type StorefrontSlots struct {
	Owner string      `json:"owner"`
	Ids   []uuid.UUID `json:"ids"`
}

// ProductSlots lists a storefront's product slots. Removed products are
// reported as the nil UUID.
type ProductSlots struct {
	StorefrontId uuid.UUID   `json:"storefront_id"`
	Ids          []uuid.UUID `json:"ids"`
}

type Created struct {
	Id uuid.UUID `json:"id"`
}

type NewProduct struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=1024"`
	Price       uint64 `json:"price"`
	Quantity    uint64 `json:"quantity"`
}

type PriceUpdate struct {
	Price *uint64 `json:"price" validate:"required"`
}

type Product struct {
	Id           uuid.UUID `json:"id"`
	StorefrontId uuid.UUID `json:"storefront_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        uint64    `json:"price"`
	Quantity     uint64    `json:"quantity"`
}

// Purchase is the body of a purchase. Paid is the amount attached to the call.
type Purchase struct {
	Quantity uint64 `json:"quantity" validate:"required"`
	Paid     uint64 `json:"paid"`
}

type Receipt struct {
	StorefrontId uuid.UUID `json:"storefront_id"`
	ProductId    uuid.UUID `json:"product_id"`
	Buyer        string    `json:"buyer"`
	Quantity     uint64    `json:"quantity"`
	Total        uint64    `json:"total"`
	Refund       uint64    `json:"refund"`
}

type Amount struct {
	Amount uint64 `json:"amount"`
}

// LedgerSummary describes the ledger as a whole.
type LedgerSummary struct {
	Owner                 string `json:"owner"`
	Paused                bool   `json:"paused"`
	Balance               uint64 `json:"balance"`
	TotalStorefrontsCount int    `json:"total_storefronts_count"`
}

type LedgerEntry struct {
	EntryId      string    `json:"entry_id"`
	StorefrontId uuid.UUID `json:"storefront_id"`
	AccountId    string    `json:"account_id"`
	Kind         string    `json:"kind"`
	Debit        *uint64   `json:"debit,omitempty"`
	Credit       *uint64   `json:"credit,omitempty"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}

type Account struct {
	Identity  string    `json:"identity"`
	Balance   uint64    `json:"balance"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
