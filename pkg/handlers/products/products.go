package products

import (
	"fmt"
	"net/http"

	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/handlers/respond"
	"github.com/chris/marketplace-ledger/pkg/mapping"
	"github.com/chris/marketplace-ledger/pkg/middleware"
	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/google/uuid"
)

// ProductsHandler holds the dependencies for product handlers.
type ProductsHandler struct {
	Store storage.ProductStore
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(store storage.ProductStore) *ProductsHandler {
	return &ProductsHandler{Store: store}
}

// AddProduct lists a new product. With ?preview=true it only reports the id
// the product would get and returns 200 instead of 201.
func (h *ProductsHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	sfID, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to add product", err)
		return
	}

	var req api.NewProduct
	if err := respond.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	caller := middleware.Caller(r.Context())
	if r.URL.Query().Get("preview") == "true" {
		id, err := h.Store.PreviewAddProduct(caller, sfID, req.Name, req.Description, req.Price, req.Quantity)
		if err != nil {
			respond.Error(w, "Failed to preview product", err)
			return
		}
		respond.JSON(w, http.StatusOK, &api.Created{Id: id})
		return
	}

	id, err := h.Store.AddProduct(r.Context(), caller, sfID, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		respond.Error(w, "Failed to add product", err)
		return
	}
	respond.JSON(w, http.StatusCreated, &api.Created{Id: id})
}

func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	sfID, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		respond.Error(w, "Failed to retrieve products", err)
		return
	}

	n, err := h.Store.GetProductCount(sfID)
	if err != nil {
		respond.Error(w, "Failed to retrieve products", err)
		return
	}

	out := &api.ProductSlots{StorefrontId: sfID, Ids: make([]uuid.UUID, 0, n)}
	for i := 0; i < n; i++ {
		id, err := h.Store.GetProductId(sfID, i)
		if err != nil {
			respond.Error(w, fmt.Sprintf("Failed to retrieve product slot %d", i), err)
			return
		}
		out.Ids = append(out.Ids, id)
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	pID, err := respond.UUIDParam(r, "productId")
	if err != nil {
		respond.Error(w, "Failed to retrieve product", err)
		return
	}

	p, err := h.Store.GetProduct(pID)
	if err != nil {
		respond.Error(w, "Failed to retrieve product", err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiProduct(p))
}

func (h *ProductsHandler) GetProductPrice(w http.ResponseWriter, r *http.Request) {
	pID, err := respond.UUIDParam(r, "productId")
	if err != nil {
		respond.Error(w, "Failed to retrieve price", err)
		return
	}

	price, err := h.Store.GetProductPrice(pID)
	if err != nil {
		respond.Error(w, "Failed to retrieve price", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.Amount{Amount: price})
}

func (h *ProductsHandler) UpdateProductPrice(w http.ResponseWriter, r *http.Request) {
	sfID, pID, err := ids(r)
	if err != nil {
		respond.Error(w, "Failed to update price", err)
		return
	}

	var req api.PriceUpdate
	if err := respond.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateProductPrice(r.Context(), middleware.Caller(r.Context()), sfID, pID, *req.Price); err != nil {
		respond.Error(w, "Failed to update price", err)
		return
	}
	respond.JSON(w, http.StatusOK, &api.Amount{Amount: *req.Price})
}

func (h *ProductsHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	sfID, pID, err := ids(r)
	if err != nil {
		respond.Error(w, "Failed to remove product", err)
		return
	}

	if err := h.Store.RemoveProduct(r.Context(), middleware.Caller(r.Context()), sfID, pID); err != nil {
		respond.Error(w, "Failed to remove product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ids(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	sfID, err := respond.UUIDParam(r, "storefrontId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	pID, err := respond.UUIDParam(r, "productId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return sfID, pID, nil
}
