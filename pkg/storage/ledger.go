package storage

import (
	"github.com/chris/marketplace-ledger/pkg/models"
)

// LedgerReader defines the interface for reading journal data.
type LedgerReader interface {
	// ListLedgerEntries retrieves the most recent ledger entries, newest first.
	// A limit of zero returns every entry.
	ListLedgerEntries(limit int) ([]models.LedgerEntry, error)
}

// LedgerStore is the ledger-wide view: journal, aggregates and gate state.
type LedgerStore interface {
	LedgerReader
	Owner() models.Identity
	Paused() bool
	GetBalance() (uint64, error)
	GetTotalStorefrontsCount() (int, error)
}
