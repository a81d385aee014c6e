package payments

import (
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/mapping"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/storage"
)

// PaymentsHandler holds the dependencies for purchase and withdrawal handlers.
type PaymentsHandler struct {
	Store storage.PaymentStore
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentStore) *PaymentsHandler {
	return &PaymentsHandler{Store: store}
}

// PurchaseProduct buys a product as the caller. The paid amount travels in the body.
func (h *PaymentsHandler) PurchaseProduct(w http.ResponseWriter, r *http.Request) {
	sfID, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to purchase product", err)
		return
	}
	pID, err := respond.UUIDParam(r, "productId")
	if err != nil {
		respond.Error(w, "Failed to purchase product", err)
		return
	}

	var req api.Purchase
	if err := respond.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.Store.PurchaseProduct(r.Context(), middleware.Caller(r.Context()), sfID, pID, req.Quantity, req.Paid)
	if err != nil {
		respond.Error(w, "Failed to purchase product", err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiReceipt(receipt))
}

// WithdrawStorefrontBalance pays the storefront balance to the caller.
func (h *PaymentsHandler) WithdrawStorefrontBalance(w http.ResponseWriter, r *http.Request) {
	sfID, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to withdraw balance", err)
		return
	}

	amount, err := h.Store.WithdrawStorefrontBalance(r.Context(), middleware.Caller(r.Context()), sfID)
	if err != nil {
		respond.Error(w, "Failed to withdraw balance", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.Amount{Amount: amount})
}
