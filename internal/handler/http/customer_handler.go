package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type CustomerRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Disambiguator    string `json:"disambiguator"`
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	ShippingMethodID int64  `json:"shipping_method_id" validate:"required,gt=0"`
	PaymentMethodID  int64  `json:"payment_method_id" validate:"required,gt=0"`
}

type CustomerHandler struct {
	service  catalog.Service
	validate *validator.Validate
}

func NewCustomerHandler(service catalog.Service, validate *validator.Validate) *CustomerHandler {
	return &CustomerHandler{service: service, validate: validate}
}

func (h *CustomerHandler) RegisterRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_customer")
	add := perm("add_customer")
	change := perm("change_customer")
	remove := perm("delete_customer")

	r.With(view).Get("/", h.handleList)
	r.With(view).Get("/{id}/", h.handleDetail)
	r.With(add).Post("/create/", h.handleCreate)
	r.With(change).Post("/{id}/update/", h.handleUpdate)
	r.With(remove).Get("/{id}/delete/", h.handleDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleDelete)
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list customers")
		return
	}
	respondWithJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetCustomerDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get customer")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CustomerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), customerFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create customer")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *CustomerHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req CustomerRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateCustomer(r.Context(), customerFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update customer")
		return
	}

	detail, err := h.service.GetCustomerDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get customer")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CustomerHandler) handleDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteCustomer(r.Context(), id)
	})
}

func (h *CustomerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteCustomer(r.Context(), id)
	})
}

func customerFromRequest(id int64, req CustomerRequest) *catalog.Customer {
	return &catalog.Customer{
		ID:               id,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Disambiguator:    req.Disambiguator,
		Username:         req.Username,
		Password:         req.Password,
		Email:            req.Email,
		ShippingMethodID: req.ShippingMethodID,
		PaymentMethodID:  req.PaymentMethodID,
	}
}
