package handlers

import (
	"log"
	"net/http"
)

// GetCategoriesHandler godoc
// @Summary List menu categories
// @Tags products
// @Produce json
// @Success 200 {array} models.Category
// @Failure 503 {string} string "Backend unavailable"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := backend.Categories(r.Context())
	if err != nil {
		log.Printf("failed to load categories: %v", err)
		http.Error(w, "failed to load categories", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
