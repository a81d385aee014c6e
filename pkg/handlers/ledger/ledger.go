package ledger

import (
	"fmt"
	"math"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/mapping"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

const defaultLimit = 20

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Store storage.LedgerStore
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.LedgerStore) *LedgerHandler {
	return &LedgerHandler{Store: store}
}

// GetSummary reports the aggregate custodial balance and storefront count.
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Store.GetBalance()
	if err != nil {
		respond.Error(w, "Failed to retrieve ledger balance", err)
		return
	}
	total, err := h.Store.GetTotalStorefrontsCount()
	if err != nil {
		respond.Error(w, "Failed to retrieve storefront count", err)
		return
	}

	respond.JSON(w, http.StatusOK, &api.LedgerSummary{
		Owner:                 string(h.Store.Owner()),
		Paused:                h.Store.Paused(),
		Balance:               balance,
		TotalStorefrontsCount: total,
	})
}

// ListLedgerEntries returns journal entries newest first. limit=0 returns all of them.
func (h *LedgerHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request) {
	limit, err := respond.IntQuery(r, "limit", defaultLimit)
	if err != nil {
		respond.Error(w, "Failed to retrieve ledger entries", err)
		return
	}

	domainEntries, err := h.Store.ListLedgerEntries(limit)
	if err != nil {
		respond.Error(w, "Failed to retrieve ledger entries", err)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(domainEntries))
	for i, entry := range domainEntries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&entry)
	}
	respond.JSON(w, http.StatusOK, apiEntries)
}

// ArchiveHandler serves journal entries from the durable archive.
type ArchiveHandler struct {
	Archive storage.ArchiveReader
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(archive storage.ArchiveReader) *ArchiveHandler {
	return &ArchiveHandler{Archive: archive}
}

// ListArchivedEntries returns archived entries newest first, optionally
// filtered with ?storefront=<id>.
func (h *ArchiveHandler) ListArchivedEntries(w http.ResponseWriter, r *http.Request) {
	limit, err := respond.IntQuery(r, "limit", defaultLimit)
	if err != nil || limit == 0 || limit > math.MaxInt32 {
		http.Error(w, "Invalid limit", http.StatusBadRequest)
		return
	}

	var domainEntries []models.LedgerEntry
	if raw := r.URL.Query().Get("storefront"); raw != "" {
		sfID, perr := uuid.Parse(raw)
		if perr != nil {
			http.Error(w, "Invalid storefront id", http.StatusBadRequest)
			return
		}
		domainEntries, err = h.Archive.ListStorefrontEntries(r.Context(), sfID, int32(limit))
	} else {
		domainEntries, err = h.Archive.ListLedgerEntries(r.Context(), int32(limit))
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve archived entries: %v", err), http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(domainEntries))
	for i, entry := range domainEntries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&entry)
	}
	respond.JSON(w, http.StatusOK, apiEntries)
}
