package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tastykitchen/admin-api/internal/enrich"
	"github.com/tastykitchen/admin-api/internal/models"
)

// GetOrdersHandler godoc
// @Summary List all orders with enriched product details
// @Tags orders
// @Produce json
// @Success 200 {object} OrdersResult
// @Failure 503 {string} string "Backend unavailable"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := backend.Orders(r.Context())
	if err != nil {
		log.Printf("failed to load orders: %v", err)
		http.Error(w, "failed to load orders", http.StatusServiceUnavailable)
		return
	}
	reverseOrders(orders)

	enriched, unresolved, ok := enrichForScreen(r, orders)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, OrdersResult{
		Data: enriched,
		Meta: Meta{TotalCount: len(enriched), UnresolvedProducts: unresolved},
	})
}

// enrichForScreen joins product details onto the order set for one screen
// load. Partial failures degrade per item and are reported in the result
// meta; an abandoned request ends the screen load silently.
func enrichForScreen(r *http.Request, orders []models.Order) ([]enrich.EnrichedOrder, []string, bool) {
	enriched, err := enricher.EnrichOrders(r.Context(), orders)

	var partial *enrich.PartialEnrichmentError
	switch {
	case err == nil:
		return enriched, nil, true
	case errors.As(err, &partial):
		log.Printf("partial enrichment: %v", partial)
		return enriched, partial.Unresolved, true
	default:
		// Request context cancelled; the screen is gone, discard the result.
		return nil, nil, false
	}
}

// reverseOrders flips the backend's oldest-first feed so screens render the
// newest order on top.
func reverseOrders(orders []models.Order) {
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
}
