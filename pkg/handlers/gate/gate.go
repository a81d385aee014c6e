package gate

import (
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// GateHandler exposes the pause and shutdown controls of one component.
type GateHandler struct {
	Gate storage.Gated
}

// NewGateHandler creates a new GateHandler.
func NewGateHandler(gate storage.Gated) *GateHandler {
	return &GateHandler{Gate: gate}
}

func (h *GateHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, &api.GateStatus{
		Owner:  string(h.Gate.Owner()),
		Paused: h.Gate.Paused(),
	})
}

func (h *GateHandler) Pause(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Pause(middleware.Caller(r.Context())); err != nil {
		respond.Error(w, "Failed to pause", err)
		return
	}
	h.GetStatus(w, r)
}

func (h *GateHandler) Unpause(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Unpause(middleware.Caller(r.Context())); err != nil {
		respond.Error(w, "Failed to unpause", err)
		return
	}
	h.GetStatus(w, r)
}

// Shutdown permanently disables the component.
func (h *GateHandler) Shutdown(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Shutdown(r.Context(), middleware.Caller(r.Context())); err != nil {
		respond.Error(w, "Failed to shut down", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
