package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/payments"
	"github.com/chris/marketplace-ledger/pkg/storage/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router http.Handler
	book   *payments.Book
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	book := payments.NewBook()

	registry, err := memory.NewRegistry("owner", logger)
	require.NoError(t, err)
	ledger, err := memory.NewLedger("owner", registry, book, nil, logger)
	require.NoError(t, err)

	h := NewApiHandler(registry, ledger, book)
	return &testServer{t: t, router: h.Router(logger), book: book}
}

func (s *testServer) do(method, path, caller string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if caller != "" {
		req.Header.Set(middleware.CallerHeader, caller)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// seller sets up an approved store owner with one storefront and one product.
func (s *testServer) seller(price, quantity uint64) (uuid.UUID, uuid.UUID) {
	s.t.Helper()
	require.Equal(s.t, http.StatusOK, s.do(http.MethodPost, "/admins", "owner", api.IdentityRequest{Identity: "admin"}).Code)
	require.Equal(s.t, http.StatusOK, s.do(http.MethodPut, "/store-owners/seller", "admin", nil).Code)

	rr := s.do(http.MethodPost, "/storefronts", "seller", api.NewStorefront{Name: "shop"})
	require.Equal(s.t, http.StatusCreated, rr.Code)
	sf := decode[api.Created](s.t, rr)

	rr = s.do(http.MethodPost, "/storefronts/"+sf.Id.String()+"/products", "seller", api.NewProduct{Name: "widget", Price: price, Quantity: quantity})
	require.Equal(s.t, http.StatusCreated, rr.Code)
	p := decode[api.Created](s.t, rr)
	return sf.Id, p.Id
}

func TestAccessRoutes(t *testing.T) {
	t.Run("Admin Lifecycle", func(t *testing.T) {
		s := newTestServer(t)

		assert.False(t, decode[api.RoleStatus](t, s.do(http.MethodGet, "/admins/owner", "", nil)).Granted)
		assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/admins", "owner", api.IdentityRequest{Identity: "alice"}).Code)
		assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/admins", "alice", api.IdentityRequest{Identity: "bob"}).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/admins/bob", "alice", nil).Code)
		assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/admins/bob", "owner", nil).Code)
		assert.False(t, decode[api.RoleStatus](t, s.do(http.MethodGet, "/admins/bob", "", nil)).Granted)
	})

	t.Run("Missing Caller", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/admins", "", api.IdentityRequest{Identity: "alice"}).Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/admins", "owner", api.IdentityRequest{}).Code)
	})

	t.Run("Store Owner Requests", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/store-owners/requests", "carol", nil).Code)
		assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/store-owners/requests", "carol", nil).Code)

		reqs := decode[api.StoreOwnerRequests](t, s.do(http.MethodGet, "/store-owners/requests", "", nil))
		assert.Equal(t, 2, reqs.Count)
		assert.Equal(t, []string{"carol", "carol"}, reqs.Requesters)

		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/store-owners/carol", "owner", nil).Code)
		assert.False(t, decode[api.RoleStatus](t, s.do(http.MethodGet, "/store-owners/carol", "", nil)).Granted)
	})

	t.Run("Registry Pause", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/registry/pause", "mallory", nil).Code)
		assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/registry/pause", "owner", nil).Code)
		assert.True(t, decode[api.GateStatus](t, s.do(http.MethodGet, "/registry", "", nil)).Paused)
		assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodPost, "/store-owners/requests", "carol", nil).Code)
	})
}

func TestStorefrontRoutes(t *testing.T) {
	t.Run("Purchase And Withdraw", func(t *testing.T) {
		s := newTestServer(t)
		sfID, pID := s.seller(7, 10)
		purchase := "/storefronts/" + sfID.String() + "/products/" + pID.String() + "/purchases"

		rr := s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 3, Paid: 25})
		require.Equal(t, http.StatusCreated, rr.Code)
		receipt := decode[api.Receipt](t, rr)
		assert.Equal(t, uint64(21), receipt.Total)
		assert.Equal(t, uint64(4), receipt.Refund)

		account := decode[api.Account](t, s.do(http.MethodGet, "/accounts/buyer", "", nil))
		assert.Equal(t, uint64(4), account.Balance)

		assert.Equal(t, http.StatusPaymentRequired, s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 1, Paid: 6}).Code)
		assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 8, Paid: 100}).Code)

		withdraw := "/storefronts/" + sfID.String() + "/withdrawals"
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, withdraw, "buyer", nil).Code)
		assert.Equal(t, uint64(21), decode[api.Amount](t, s.do(http.MethodPost, withdraw, "seller", nil)).Amount)
		assert.Equal(t, uint64(0), decode[api.Amount](t, s.do(http.MethodPost, withdraw, "seller", nil)).Amount)
		assert.Equal(t, uint64(21), s.book.Balance("seller"))

		entries := decode[[]api.LedgerEntry](t, s.do(http.MethodGet, "/ledger/entries?limit=0", "", nil))
		require.Len(t, entries, 3)
		assert.Equal(t, "WITHDRAWAL", entries[0].Kind)
	})

	t.Run("Preview And Tombstones", func(t *testing.T) {
		s := newTestServer(t)
		sfID, pID := s.seller(1, 1)
		products := "/storefronts/" + sfID.String() + "/products"

		rr := s.do(http.MethodPost, products+"?preview=true", "seller", api.NewProduct{Name: "gadget", Price: 2, Quantity: 2})
		require.Equal(t, http.StatusOK, rr.Code)
		preview := decode[api.Created](t, rr)

		rr = s.do(http.MethodPost, products, "seller", api.NewProduct{Name: "gadget", Price: 2, Quantity: 2})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, preview.Id, decode[api.Created](t, rr).Id)

		assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, products+"/"+pID.String(), "seller", nil).Code)
		slots := decode[api.ProductSlots](t, s.do(http.MethodGet, products, "", nil))
		assert.Equal(t, []uuid.UUID{uuid.Nil, preview.Id}, slots.Ids)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/products/"+pID.String(), "", nil).Code)
	})

	t.Run("Update Price", func(t *testing.T) {
		s := newTestServer(t)
		sfID, pID := s.seller(1, 1)
		path := "/storefronts/" + sfID.String() + "/products/" + pID.String() + "/price"
		price := uint64(9)

		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, path, "buyer", api.PriceUpdate{Price: &price}).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, path, "seller", api.PriceUpdate{}).Code)
		assert.Equal(t, http.StatusOK, s.do(http.MethodPut, path, "seller", api.PriceUpdate{Price: &price}).Code)
		assert.Equal(t, uint64(9), decode[api.Amount](t, s.do(http.MethodGet, "/products/"+pID.String()+"/price", "", nil)).Amount)
	})

	t.Run("Remove Storefront", func(t *testing.T) {
		s := newTestServer(t)
		sfID, pID := s.seller(5, 5)
		purchase := "/storefronts/" + sfID.String() + "/products/" + pID.String() + "/purchases"
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 2, Paid: 10}).Code)

		assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/storefronts/"+sfID.String(), "buyer", nil).Code)
		assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/storefronts/"+sfID.String(), "seller", nil).Code)
		assert.Equal(t, uint64(10), s.book.Balance("seller"))
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/storefronts/"+sfID.String(), "", nil).Code)

		slots := decode[api.StorefrontSlots](t, s.do(http.MethodGet, "/owners/seller/storefronts", "", nil))
		assert.Equal(t, []uuid.UUID{uuid.Nil}, slots.Ids)
	})

	t.Run("Unapproved Caller", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/storefronts", "stranger", api.NewStorefront{Name: "shop"}).Code)
	})

	t.Run("Bad Id", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/storefronts/not-a-uuid", "", nil).Code)
	})

	t.Run("Ledger Pause And Shutdown", func(t *testing.T) {
		s := newTestServer(t)
		sfID, pID := s.seller(4, 5)
		purchase := "/storefronts/" + sfID.String() + "/products/" + pID.String() + "/purchases"
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 1, Paid: 4}).Code)

		require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/ledger/pause", "owner", nil).Code)
		assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodPost, purchase, "buyer", api.Purchase{Quantity: 1, Paid: 4}).Code)
		summary := decode[api.LedgerSummary](t, s.do(http.MethodGet, "/ledger", "", nil))
		assert.True(t, summary.Paused)
		assert.Equal(t, uint64(4), summary.Balance)

		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/ledger/shutdown", "seller", nil).Code)
		assert.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/ledger/shutdown", "owner", nil).Code)
		assert.Equal(t, uint64(4), s.book.Balance("owner"))
		assert.Equal(t, http.StatusGone, s.do(http.MethodGet, "/ledger", "", nil).Code)
	})
}
