package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/handlers/access"
	"github.com/chris/marketplace-ledger/pkg/handlers/accounts"
	"github.com/chris/marketplace-ledger/pkg/handlers/gate"
	"github.com/chris/marketplace-ledger/pkg/handlers/ledger"
	paymenthandlers "github.com/chris/marketplace-ledger/pkg/handlers/payments"
	"github.com/chris/marketplace-ledger/pkg/handlers/products"
	"github.com/chris/marketplace-ledger/pkg/handlers/storefronts"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/payments"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ApiHandler holds the per-resource handlers of the marketplace API.
type ApiHandler struct {
	Access       *access.AccessHandler
	RegistryGate *gate.GateHandler
	Storefronts  *storefronts.StorefrontsHandler
	Products     *products.ProductsHandler
	Payments     *paymenthandlers.PaymentsHandler
	Ledger       *ledger.LedgerHandler
	LedgerGate   *gate.GateHandler
	Accounts     *accounts.AccountsHandler

	// Archive is nil when no ledger archive table is configured.
	Archive *ledger.ArchiveHandler
}

// LedgerAPI is everything the HTTP layer needs from the storefront ledger.
type LedgerAPI interface {
	storage.ApiStore
	storage.LedgerStore
	storage.Gated
}

// NewApiHandler creates a new ApiHandler over the registry, the ledger and
// the external accounts credited by the payer.
func NewApiHandler(registry storage.AccessRegistry, store LedgerAPI, accts payments.AccountReader) *ApiHandler {
	return &ApiHandler{
		Access:       access.NewAccessHandler(registry),
		RegistryGate: gate.NewGateHandler(registry),
		Storefronts:  storefronts.NewStorefrontsHandler(store),
		Products:     products.NewProductsHandler(store),
		Payments:     paymenthandlers.NewPaymentsHandler(store),
		Ledger:       ledger.NewLedgerHandler(store),
		LedgerGate:   gate.NewGateHandler(store),
		Accounts:     accounts.NewAccountsHandler(accts),
	}
}

// Router mounts every route on a new chi router.
func (h *ApiHandler) Router(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewStructuredLogger(logger))
	r.Use(middleware.CallerIdentity)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Reads.
	r.Get("/registry", h.RegistryGate.GetStatus)
	r.Get("/admins/{identity}", h.Access.CheckAdmin)
	r.Get("/store-owners/requests", h.Access.ListStoreOwnerRequests)
	r.Get("/store-owners/{identity}", h.Access.CheckStoreOwner)
	r.Get("/ledger", h.Ledger.GetSummary)
	r.Get("/ledger/entries", h.Ledger.ListLedgerEntries)
	r.Get("/owners/{owner}/storefronts", h.Storefronts.ListOwnerStorefronts)
	r.Get("/storefronts/{storefrontId}", h.Storefronts.GetStorefront)
	r.Get("/storefronts/{storefrontId}/balance", h.Storefronts.GetStorefrontBalance)
	r.Get("/storefronts/{storefrontId}/products", h.Products.ListProducts)
	r.Get("/products/{productId}", h.Products.GetProduct)
	r.Get("/products/{productId}/price", h.Products.GetProductPrice)
	r.Get("/accounts/{identity}", h.Accounts.GetAccount)
	if h.Archive != nil {
		r.Get("/ledger/archive", h.Archive.ListArchivedEntries)
	}

	// Mutations carry an authenticated caller.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireCaller)

		r.Post("/registry/pause", h.RegistryGate.Pause)
		r.Post("/registry/unpause", h.RegistryGate.Unpause)
		r.Post("/registry/shutdown", h.RegistryGate.Shutdown)
		r.Post("/admins", h.Access.AddAdmin)
		r.Delete("/admins/{identity}", h.Access.RemoveAdmin)
		r.Post("/store-owners/requests", h.Access.RequestStoreOwnerStatus)
		r.Put("/store-owners/{identity}", h.Access.ApproveStoreOwner)
		r.Delete("/store-owners/{identity}", h.Access.RemoveStoreOwner)

		r.Post("/ledger/pause", h.LedgerGate.Pause)
		r.Post("/ledger/unpause", h.LedgerGate.Unpause)
		r.Post("/ledger/shutdown", h.LedgerGate.Shutdown)
		r.Post("/storefronts", h.Storefronts.CreateStorefront)
		r.Delete("/storefronts/{storefrontId}", h.Storefronts.RemoveStorefront)
		r.Post("/storefronts/{storefrontId}/withdrawals", h.Payments.WithdrawStorefrontBalance)
		r.Post("/storefronts/{storefrontId}/products", h.Products.AddProduct)
		r.Put("/storefronts/{storefrontId}/products/{productId}/price", h.Products.UpdateProductPrice)
		r.Delete("/storefronts/{storefrontId}/products/{productId}", h.Products.RemoveProduct)
		r.Post("/storefronts/{storefrontId}/products/{productId}/purchases", h.Payments.PurchaseProduct)
	})

	return r
}
