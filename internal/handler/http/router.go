package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/vasiliy-maslov/catalog-service/internal/auth"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

// NewRouter assembles the catalog routes. Session endpoints stay open;
// everything under an entity prefix requires an authenticated identity, and
// each route additionally carries its permission codename.
func NewRouter(catalogSvc catalog.Service, authSvc auth.Service, enforcePermissions bool) chi.Router {
	validate := validator.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/product/", http.StatusFound)
	})
	router.Get("/about/", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"service":     "catalog-service",
			"description": "Catalog of products, customers, shopping carts and orders.",
		})
	})

	authHandler := NewAuthHandler(authSvc, validate)
	router.Route("/auth", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
	})

	perm := func(codename string) func(http.Handler) http.Handler {
		return auth.RequirePermission(codename, enforcePermissions)
	}

	categoryHandler := newCategoryHandler(catalogSvc, validate)
	shippingHandler := newShippingMethodHandler(catalogSvc, validate)
	paymentHandler := newPaymentMethodHandler(catalogSvc, validate)
	customerHandler := NewCustomerHandler(catalogSvc, validate)
	productHandler := NewProductHandler(catalogSvc, validate)
	cartHandler := NewCartHandler(catalogSvc, validate)
	orderHandler := NewOrderHandler(catalogSvc, validate)

	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticator(authSvc))

		r.Route("/category", func(r chi.Router) { categoryHandler.RegisterRoutes(r, perm) })
		r.Route("/shipping-method", func(r chi.Router) { shippingHandler.RegisterRoutes(r, perm) })
		r.Route("/payment-method", func(r chi.Router) { paymentHandler.RegisterRoutes(r, perm) })
		r.Route("/customer", func(r chi.Router) { customerHandler.RegisterRoutes(r, perm) })
		r.Route("/product", func(r chi.Router) { productHandler.RegisterRoutes(r, perm) })
		r.Route("/shopping-cart", func(r chi.Router) { cartHandler.RegisterCartRoutes(r, perm) })
		r.Route("/cart-item", func(r chi.Router) { cartHandler.RegisterItemRoutes(r, perm) })
		r.Route("/order", func(r chi.Router) { orderHandler.RegisterOrderRoutes(r, perm) })
		r.Route("/order-line-item", func(r chi.Router) { orderHandler.RegisterLineItemRoutes(r, perm) })
	})

	return router
}
