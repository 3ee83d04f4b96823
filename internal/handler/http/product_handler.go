package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type ProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	StockNum   int     `json:"stock_num" validate:"gte=0"`
	CategoryID int64   `json:"category_id" validate:"required,gt=0"`
}

type ProductHandler struct {
	service  catalog.Service
	validate *validator.Validate
}

func NewProductHandler(service catalog.Service, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{service: service, validate: validate}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_product")
	add := perm("add_product")
	change := perm("change_product")
	remove := perm("delete_product")

	r.With(view).Get("/", h.handleList)
	r.With(view).Get("/{id}/", h.handleDetail)
	r.With(add).Post("/create/", h.handleCreate)
	r.With(change).Post("/{id}/update/", h.handleUpdate)
	r.With(remove).Get("/{id}/delete/", h.handleDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleDelete)
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list products")
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetProductDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get product")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	created, err := h.service.CreateProduct(r.Context(), productFromRequest(0, req))
	if err != nil {
		respondDomainError(w, err, "Failed to create product")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productFromRequest(id, req)); err != nil {
		respondDomainError(w, err, "Failed to update product")
		return
	}

	detail, err := h.service.GetProductDetail(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get product")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *ProductHandler) handleDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.service.CheckDeleteProduct(r.Context(), id)
	})
}

func (h *ProductHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.service.DeleteProduct(r.Context(), id)
	})
}

func productFromRequest(id int64, req ProductRequest) *catalog.Product {
	return &catalog.Product{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		StockNum:   req.StockNum,
		CategoryID: req.CategoryID,
	}
}
