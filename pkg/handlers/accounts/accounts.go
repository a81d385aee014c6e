package accounts

import (
	"fmt"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/mapping"
	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/chris/marketplace-ledger/pkg/payments"
	"github.com/go-chi/chi/v5"
)

// AccountsHandler exposes the external accounts credited by refunds and payouts.
type AccountsHandler struct {
	Accounts payments.AccountReader
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(accounts payments.AccountReader) *AccountsHandler {
	return &AccountsHandler{Accounts: accounts}
}

func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := models.Identity(chi.URLParam(r, "identity"))
	account, err := h.Accounts.GetAccount(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusInternalServerError)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiAccount(account))
}
