package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/tastykitchen/admin-api/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(RateLimitMiddleware)

	r.Get("/healthz", handlers.HealthHandler)

	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/dashboard/orders", handlers.GetRecentOrdersHandler)
	r.Get("/dashboard/timeline", handlers.GetOrderTimelineHandler)
	r.Get("/dashboard/revenue", handlers.GetRevenueHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Post("/products", handlers.CreateProductHandler)
	r.Put("/products/{id}", handlers.UpdateProductHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)

	r.Get("/users", handlers.GetUsersHandler)
	r.Get("/users/{id}", handlers.GetUserHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
