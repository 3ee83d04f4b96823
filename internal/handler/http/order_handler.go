package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type OrderRequest struct {
	TotalPrice       float64   `json:"total_price" validate:"gte=0"`
	OrderDate        time.Time `json:"order_date" validate:"required"`
	Receiver         string    `json:"receiver" validate:"required"`
	Address          string    `json:"address" validate:"required"`
	ShippingMethodID int64     `json:"shipping_method_id" validate:"required,gt=0"`
	PaymentMethodID  int64     `json:"payment_method_id" validate:"required,gt=0"`
	CustomerID       int64     `json:"customer_id" validate:"required,gt=0"`
}

type OrderLineItemRequest struct {
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	OrderID   int64   `json:"order_id" validate:"required,gt=0"`
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
}

type OrderHandler struct {
	service  catalog.Service
	validate *validator.Validate
}

func NewOrderHandler(service catalog.Service, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{service: service, validate: validate}
}

func (h *OrderHandler) RegisterOrderRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_order")
	add := perm("add_order")
	change := perm("change_order")
	remove := perm("delete_order")

	r.With(view).Get("/", h.handleListOrders)
	r.With(view).Get("/{id}/", h.handleOrderDetail)
	r.With(add).Post("/create/", h.handleCreateOrder)
	r.With(change).Post("/{id}/update/", h.handleUpdateOrder)
	r.With(remove).Get("/{id}/delete/", h.handleOrderDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleOrderDelete)
}

func (h *OrderHandler) RegisterLineItemRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_order_line_item")
	add := perm("add_order_line_item")
	change := perm("change_order_line_item")
	remove := perm("delete_order_line_item")

	r.With(view).Get("/", h.handleListLineItems)
	r.With(view).Get("/{id}/", h.handleLineItemDetail)
	r.With(add).Post("/create/", h.handleCreateLineItem)
	r.With(change).Post("/{id}/update/", h.handleUpdateLineItem)
	r.With(remove).Get("/{id}/delete/", h.handleLineItemDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleLineItemDelete)
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list orders")
		return
	}
	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleOrderDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetOrderDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get order")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateOrder(r.Context(), orderFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create order")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req OrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateOrder(r.Context(), orderFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update order")
		return
	}

	detail, err := h.service.GetOrderDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get order")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) handleOrderDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteOrder(r.Context(), id)
	})
}

func (h *OrderHandler) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteOrder(r.Context(), id)
	})
}

func (h *OrderHandler) handleListLineItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListOrderLineItems(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list order line items")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *OrderHandler) handleLineItemDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetOrderLineItemDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get order line item")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) handleCreateLineItem(w http.ResponseWriter, r *http.Request) {
	var req OrderLineItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateOrderLineItem(r.Context(), lineItemFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create order line item")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) handleUpdateLineItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req OrderLineItemRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateOrderLineItem(r.Context(), lineItemFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update order line item")
		return
	}

	detail, err := h.service.GetOrderLineItemDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get order line item")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) handleLineItemDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteOrderLineItem(r.Context(), id)
	})
}

func (h *OrderHandler) handleLineItemDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteOrderLineItem(r.Context(), id)
	})
}

func orderFromRequest(id int64, req OrderRequest) *catalog.Order {
	return &catalog.Order{
		ID:               id,
		TotalPrice:       req.TotalPrice,
		OrderDate:        req.OrderDate,
		Receiver:         req.Receiver,
		Address:          req.Address,
		ShippingMethodID: req.ShippingMethodID,
		PaymentMethodID:  req.PaymentMethodID,
		CustomerID:       req.CustomerID,
	}
}

func lineItemFromRequest(id int64, req OrderLineItemRequest) *catalog.OrderLineItem {
	return &catalog.OrderLineItem{
		ID:        id,
		Price:     req.Price,
		Quantity:  req.Quantity,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
	}
}
