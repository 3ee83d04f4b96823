package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

// PermFunc builds a permission-checking middleware for one codename. The
// router supplies it so handlers stay unaware of how identities are checked.
type PermFunc func(codename string) func(http.Handler) http.Handler

type NamedRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// namedResource routes one of the name/description reference entities.
// Category, shipping method and payment method only differ in which service
// methods they call and which permission codenames guard them.
type namedResource struct {
	entity      string
	validate    *validator.Validate
	list        func(ctx context.Context) ([]namedRecord, error)
	get         func(ctx context.Context, id int64) (*namedRecord, error)
	create      func(ctx context.Context, name, description string) (*namedRecord, error)
	update      func(ctx context.Context, id int64, name, description string) error
	checkDelete func(ctx context.Context, id int64) (*catalog.DeleteCheck, error)
	delete      func(ctx context.Context, id int64) error
}

type namedRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *namedResource) RegisterRoutes(r chi.Router, perm PermFunc) {
	view := perm("view_" + h.entity)
	add := perm("add_" + h.entity)
	change := perm("change_" + h.entity)
	remove := perm("delete_" + h.entity)

	r.With(view).Get("/", h.handleList)
	r.With(view).Get("/{id}/", h.handleGet)
	r.With(add).Post("/create/", h.handleCreate)
	r.With(change).Post("/{id}/update/", h.handleUpdate)
	r.With(remove).Get("/{id}/delete/", h.handleDeleteCheck)
	r.With(remove).Post("/{id}/delete/", h.handleDelete)
}

func (h *namedResource) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.list(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to list "+h.entity)
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}

func (h *namedResource) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := h.get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get "+h.entity)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

func (h *namedResource) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req NamedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	record, err := h.create(r.Context(), req.Name, req.Description)
	if err != nil {
		respondDomainError(w, err, "Failed to create "+h.entity)
		return
	}
	respondWithJSON(w, http.StatusCreated, record)
}

func (h *namedResource) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req NamedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, h.validate, req) {
		return
	}

	if err := h.update(r.Context(), id, req.Name, req.Description); err != nil {
		respondDomainError(w, err, "Failed to update "+h.entity)
		return
	}

	record, err := h.get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err, "Failed to get "+h.entity)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

func (h *namedResource) handleDeleteCheck(w http.ResponseWriter, r *http.Request) {
	handleDeleteCheck(w, r, func(id int64) (*catalog.DeleteCheck, error) {
		return h.checkDelete(r.Context(), id)
	})
}

func (h *namedResource) handleDelete(w http.ResponseWriter, r *http.Request) {
	handleDeleteExecute(w, r, func(id int64) error {
		return h.delete(r.Context(), id)
	})
}

func newCategoryHandler(svc catalog.Service, validate *validator.Validate) *namedResource {
	return &namedResource{
		entity:   "category",
		validate: validate,
		list: func(ctx context.Context) ([]namedRecord, error) {
			categories, err := svc.ListCategories(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]namedRecord, 0, len(categories))
			for _, c := range categories {
				records = append(records, namedRecord{ID: c.ID, Name: c.Name, Description: c.Description})
			}
			return records, nil
		},
		get: func(ctx context.Context, id int64) (*namedRecord, error) {
			c, err := svc.GetCategory(ctx, id)
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: c.ID, Name: c.Name, Description: c.Description}, nil
		},
		create: func(ctx context.Context, name, description string) (*namedRecord, error) {
			c, err := svc.CreateCategory(ctx, &catalog.Category{Name: name, Description: description})
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: c.ID, Name: c.Name, Description: c.Description}, nil
		},
		update: func(ctx context.Context, id int64, name, description string) error {
			return svc.UpdateCategory(ctx, &catalog.Category{ID: id, Name: name, Description: description})
		},
		checkDelete: svc.CheckDeleteCategory,
		delete:      svc.DeleteCategory,
	}
}

func newShippingMethodHandler(svc catalog.Service, validate *validator.Validate) *namedResource {
	return &namedResource{
		entity:   "shipping_method",
		validate: validate,
		list: func(ctx context.Context) ([]namedRecord, error) {
			methods, err := svc.ListShippingMethods(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]namedRecord, 0, len(methods))
			for _, m := range methods {
				records = append(records, namedRecord{ID: m.ID, Name: m.Name, Description: m.Description})
			}
			return records, nil
		},
		get: func(ctx context.Context, id int64) (*namedRecord, error) {
			m, err := svc.GetShippingMethod(ctx, id)
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: m.ID, Name: m.Name, Description: m.Description}, nil
		},
		create: func(ctx context.Context, name, description string) (*namedRecord, error) {
			m, err := svc.CreateShippingMethod(ctx, &catalog.ShippingMethod{Name: name, Description: description})
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: m.ID, Name: m.Name, Description: m.Description}, nil
		},
		update: func(ctx context.Context, id int64, name, description string) error {
			return svc.UpdateShippingMethod(ctx, &catalog.ShippingMethod{ID: id, Name: name, Description: description})
		},
		checkDelete: svc.CheckDeleteShippingMethod,
		delete:      svc.DeleteShippingMethod,
	}
}

func newPaymentMethodHandler(svc catalog.Service, validate *validator.Validate) *namedResource {
	return &namedResource{
		entity:   "payment_method",
		validate: validate,
		list: func(ctx context.Context) ([]namedRecord, error) {
			methods, err := svc.ListPaymentMethods(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]namedRecord, 0, len(methods))
			for _, m := range methods {
				records = append(records, namedRecord{ID: m.ID, Name: m.Name, Description: m.Description})
			}
			return records, nil
		},
		get: func(ctx context.Context, id int64) (*namedRecord, error) {
			m, err := svc.GetPaymentMethod(ctx, id)
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: m.ID, Name: m.Name, Description: m.Description}, nil
		},
		create: func(ctx context.Context, name, description string) (*namedRecord, error) {
			m, err := svc.CreatePaymentMethod(ctx, &catalog.PaymentMethod{Name: name, Description: description})
			if err != nil {
				return nil, err
			}
			return &namedRecord{ID: m.ID, Name: m.Name, Description: m.Description}, nil
		},
		update: func(ctx context.Context, id int64, name, description string) error {
			return svc.UpdatePaymentMethod(ctx, &catalog.PaymentMethod{ID: id, Name: name, Description: description})
		},
		checkDelete: svc.CheckDeletePaymentMethod,
		delete:      svc.DeletePaymentMethod,
	}
}
