package storage

import (
	"context"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
)

// ArchiveReader reads journal entries back from durable storage.
type ArchiveReader interface {
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
	ListStorefrontEntries(ctx context.Context, storefrontID uuid.UUID, limit int32) ([]models.LedgerEntry, error)
}

// ArchiveWriter persists committed journal entries. Writing the same entry
// twice must be harmless.
type ArchiveWriter interface {
	PutLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error
}

// JournalArchive combines the archive reader and writer.
type JournalArchive interface {
	ArchiveReader
	ArchiveWriter
}
