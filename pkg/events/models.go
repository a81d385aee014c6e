package events

import "github.com/google/uuid"

// MessageType defines the type of an event message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is for messages that report a custodial balance change.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
	// MessageTypeStorefrontRemoved is published after a storefront has been paid out and removed.
	MessageTypeStorefrontRemoved MessageType = "storefrontRemoved"
	// MessageTypeLedgerEntry carries one committed journal entry as its payload.
	MessageTypeLedgerEntry MessageType = "ledgerEntry"
)

// Message represents a generic event message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// Direction tells whether a balance change added to or took from a balance.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// BalanceUpdatePayload is the payload for a balanceUpdate message.
// Amount is the unsigned size of the change; Direction carries its sign.
type BalanceUpdatePayload struct {
	StorefrontID uuid.UUID `json:"storefront_id"`
	EntryID      string    `json:"entry_id"`
	Direction    Direction `json:"direction"`
	Amount       uint64    `json:"amount"`
	NewBalance   uint64    `json:"new_balance"`
}

// StorefrontRemovedPayload is the payload for a storefrontRemoved message.
type StorefrontRemovedPayload struct {
	StorefrontID uuid.UUID `json:"storefront_id"`
	Owner        string    `json:"owner"`
	PaidOut      uint64    `json:"paid_out"`
}
