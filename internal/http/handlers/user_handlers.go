package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tastykitchen/admin-api/internal/analytics"
	"github.com/tastykitchen/admin-api/internal/client"
)

// GetUsersHandler godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.User
// @Failure 503 {string} string "Backend unavailable"
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := backend.Users(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("failed to load users: %v", err)
		http.Error(w, "failed to load users", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUserHandler godoc
// @Summary User profile with enriched orders and delivery addresses
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserProfile
// @Failure 404 {string} string "Not found"
// @Failure 503 {string} string "Backend unavailable"
// @Router /users/{id} [get]
func GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := backend.User(r.Context(), id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("failed to load user: %v", err)
		http.Error(w, "failed to load user", http.StatusServiceUnavailable)
		return
	}

	orders, err := backend.UserOrders(r.Context(), id)
	if err != nil {
		log.Printf("failed to load user orders: %v", err)
		http.Error(w, "failed to load user orders", http.StatusServiceUnavailable)
		return
	}

	enriched, _, ok := enrichForScreen(r, orders)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, UserProfile{
		User:      user,
		Orders:    enriched,
		Addresses: analytics.UniqueAddresses(orders),
	})
}
