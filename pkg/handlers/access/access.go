package access

import (
	"fmt"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// AccessHandler holds the dependencies for registry handlers.
type AccessHandler struct {
	Registry storage.AccessRegistry
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(registry storage.AccessRegistry) *AccessHandler {
	return &AccessHandler{Registry: registry}
}

func (h *AccessHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req api.IdentityRequest
	if err := respond.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Registry.AddAdmin(middleware.Caller(r.Context()), models.Identity(req.Identity)); err != nil {
		respond.Error(w, "Failed to add admin", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.RoleStatus{Identity: req.Identity, Granted: true})
}

func (h *AccessHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "identity")
	if err := h.Registry.RemoveAdmin(middleware.Caller(r.Context()), models.Identity(target)); err != nil {
		respond.Error(w, "Failed to remove admin", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccessHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "identity")
	respond.JSON(w, http.StatusOK, &api.RoleStatus{
		Identity: target,
		Granted:  h.Registry.CheckAdmin(models.Identity(target)),
	})
}

// RequestStoreOwnerStatus queues the caller for store owner approval.
func (h *AccessHandler) RequestStoreOwnerStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.RequestStoreOwnerStatus(middleware.Caller(r.Context())); err != nil {
		respond.Error(w, "Failed to request store owner status", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// ListStoreOwnerRequests returns the pending queue in request order, duplicates included.
func (h *AccessHandler) ListStoreOwnerRequests(w http.ResponseWriter, r *http.Request) {
	n, err := h.Registry.GetRequestedStoreOwnersLength()
	if err != nil {
		respond.Error(w, "Failed to retrieve store owner requests", err)
		return
	}

	out := &api.StoreOwnerRequests{Count: n, Requesters: make([]string, 0, n)}
	for i := 0; i < n; i++ {
		id, err := h.Registry.GetRequestedStoreOwner(i)
		if err != nil {
			respond.Error(w, fmt.Sprintf("Failed to retrieve store owner request %d", i), err)
			return
		}
		out.Requesters = append(out.Requesters, string(id))
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *AccessHandler) ApproveStoreOwner(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "identity")
	if err := h.Registry.ApproveStoreOwnerStatus(middleware.Caller(r.Context()), models.Identity(target)); err != nil {
		respond.Error(w, "Failed to approve store owner", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.RoleStatus{Identity: target, Granted: true})
}

func (h *AccessHandler) RemoveStoreOwner(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "identity")
	if err := h.Registry.RemoveStoreOwnerStatus(middleware.Caller(r.Context()), models.Identity(target)); err != nil {
		respond.Error(w, "Failed to remove store owner", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccessHandler) CheckStoreOwner(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "identity")
	respond.JSON(w, http.StatusOK, &api.RoleStatus{
		Identity: target,
		Granted:  h.Registry.CheckStoreOwnerStatus(models.Identity(target)),
	})
}
