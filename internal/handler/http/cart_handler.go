package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type CartRequest struct {
	TotalPrice       float64 `json:"total_price" validate:"gte=0"`
	CustomerID       int64   `json:"customer_id" validate:"required,gt=0"`
	ShippingMethodID int64   `json:"shipping_method_id" validate:"required,gt=0"`
	PaymentMethodID  int64   `json:"payment_method_id" validate:"required,gt=0"`
}

type CartItemRequest struct {
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
	CartID    int64 `json:"cart_id" validate:"required,gt=0"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type CartHandler struct {
	service  catalog.Service
	validate *validator.Validate
}

func NewCartHandler(service catalog.Service, validate *validator.Validate) *CartHandler {
	return &CartHandler{service: service, validate: validate}
}

func (h *CartHandler) RegisterCartRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_shopping_cart")
	add := perm("add_shopping_cart")
	change := perm("change_shopping_cart")
	remove := perm("delete_shopping_cart")

	r.With(view).Get("/", h.handleListCarts)
	r.With(view).Get("/{id}/", h.handleCartDetail)
	r.With(add).Post("/create/", h.handleCreateCart)
	r.With(change).Post("/{id}/update/", h.handleUpdateCart)
	r.With(remove).Get("/{id}/delete/", h.handleCartDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleCartDelete)
}

func (h *CartHandler) RegisterItemRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_cart_item")
	add := perm("add_cart_item")
	change := perm("change_cart_item")
	remove := perm("delete_cart_item")

	r.With(view).Get("/", h.handleListItems)
	r.With(view).Get("/{id}/", h.handleItemDetail)
	r.With(add).Post("/create/", h.handleCreateItem)
	r.With(change).Post("/{id}/update/", h.handleUpdateItem)
	r.With(remove).Get("/{id}/delete/", h.handleItemDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleItemDelete)
}

func (h *CartHandler) handleListCarts(w http.ResponseWriter, r *http.Request) {
	carts, err := h.service.ListCarts(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list shopping carts")
		return
	}
	respondWithJSON(w, http.StatusOK, carts)
}

func (h *CartHandler) handleCartDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetCartDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get shopping cart")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CartHandler) handleCreateCart(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateCart(r.Context(), cartFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create shopping cart")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *CartHandler) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req CartRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateCart(r.Context(), cartFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update shopping cart")
		return
	}

	detail, err := h.service.GetCartDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get shopping cart")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CartHandler) handleCartDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteCart(r.Context(), id)
	})
}

func (h *CartHandler) handleCartDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteCart(r.Context(), id)
	})
}

func (h *CartHandler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCartItems(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list cart items")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *CartHandler) handleItemDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetCartItemDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get cart item")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CartHandler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateCartItem(r.Context(), cartItemFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create cart item")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *CartHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req CartItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateCartItem(r.Context(), cartItemFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update cart item")
		return
	}

	detail, err := h.service.GetCartItemDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get cart item")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CartHandler) handleItemDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteCartItem(r.Context(), id)
	})
}

func (h *CartHandler) handleItemDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteCartItem(r.Context(), id)
	})
}

func cartFromRequest(id int64, req CartRequest) *catalog.ShoppingCart {
	return &catalog.ShoppingCart{
		ID:               id,
		TotalPrice:       req.TotalPrice,
		CustomerID:       req.CustomerID,
		ShippingMethodID: req.ShippingMethodID,
		PaymentMethodID:  req.PaymentMethodID,
	}
}

func cartItemFromRequest(id int64, req CartItemRequest) *catalog.CartItem {
	return &catalog.CartItem{
		ID:        id,
		Quantity:  req.Quantity,
		CartID:    req.CartID,
		ProductID: req.ProductID,
	}
}
