package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bazaar-be/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.root)
	router.NotFound(h.notFound)

	// routes without authorization; login and register sit behind the strict
	// rate limit tier
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/users", h.users)
	})

	router.Route("/api/buyer", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleBuyer))
		r.Get("/list-of-sellers", h.listOfSellers)
		r.Get("/seller-catalog/{sellerID}", h.sellerCatalog)
		r.Post("/create-order/{sellerID}", h.createOrder)
	})

	router.Route("/api/seller", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleSeller))
		r.Post("/create-catalog", h.createCatalog)
		r.Get("/orders", h.sellerOrders)
	})

	return router
}
