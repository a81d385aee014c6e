package storefronts

import (
	"fmt"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/mapping"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StorefrontsHandler holds the dependencies for storefront handlers.
type StorefrontsHandler struct {
	Store storage.StorefrontStore
}

// NewStorefrontsHandler creates a new StorefrontsHandler.
func NewStorefrontsHandler(store storage.StorefrontStore) *StorefrontsHandler {
	return &StorefrontsHandler{Store: store}
}

func (h *StorefrontsHandler) CreateStorefront(w http.ResponseWriter, r *http.Request) {
	var req api.NewStorefront
	if err := respond.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Store.CreateStorefront(r.Context(), middleware.Caller(r.Context()), req.Name)
	if err != nil {
		respond.Error(w, "Failed to create storefront", err)
		return
	}
	respond.JSON(w, http.StatusCreated, &api.Created{Id: id})
}

func (h *StorefrontsHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to retrieve storefront", err)
		return
	}

	sf, err := h.Store.GetStorefront(id)
	if err != nil {
		respond.Error(w, "Failed to retrieve storefront", err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiStorefront(sf))
}

// RemoveStorefront pays out the balance to the caller and removes the storefront.
func (h *StorefrontsHandler) RemoveStorefront(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to remove storefront", err)
		return
	}

	if err := h.Store.RemoveStorefront(r.Context(), middleware.Caller(r.Context()), id); err != nil {
		respond.Error(w, "Failed to remove storefront", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorefrontsHandler) GetStorefrontBalance(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to retrieve balance", err)
		return
	}

	balance, err := h.Store.GetStorefrontBalance(id)
	if err != nil {
		respond.Error(w, "Failed to retrieve balance", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.Amount{Amount: balance})
}

// ListOwnerStorefronts returns every storefront slot of an owner, tombstones included.
func (h *StorefrontsHandler) ListOwnerStorefronts(w http.ResponseWriter, r *http.Request) {
	owner := models.Identity(chi.URLParam(r, "owner"))

	n, err := h.Store.GetStorefrontCount(owner)
	if err != nil {
		respond.Error(w, "Failed to retrieve storefronts", err)
		return
	}

	out := &api.StorefrontSlots{Owner: string(owner), Ids: make([]uuid.UUID, 0, n)}
	for i := 0; i < n; i++ {
		id, err := h.Store.GetStorefrontsId(owner, i)
		if err != nil {
			respond.Error(w, fmt.Sprintf("Failed to retrieve storefront slot %d", i), err)
			return
		}
		out.Ids = append(out.Ids, id)
	}
	respond.JSON(w, http.StatusOK, out)
}
