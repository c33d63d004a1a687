package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/tastykitchen/admin-api/internal/analytics"
)

const timelineLength = 5

// GetRecentOrdersHandler godoc
// @Summary Recent orders for the dashboard, newest first
// @Tags dashboard
// @Produce json
// @Success 200 {object} OrdersResult
// @Failure 503 {string} string "Backend unavailable"
// @Router /dashboard/orders [get]
func GetRecentOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := backend.Orders(r.Context())
	if err != nil {
		log.Printf("failed to load orders: %v", err)
		http.Error(w, "failed to load orders", http.StatusServiceUnavailable)
		return
	}
	reverseOrders(orders)
	if len(orders) > recentOrdersCount {
		orders = orders[:recentOrdersCount]
	}

	enriched, unresolved, ok := enrichForScreen(r, orders)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, OrdersResult{
		Data: enriched,
		Meta: Meta{TotalCount: len(enriched), UnresolvedProducts: unresolved},
	})
}

// GetOrderTimelineHandler godoc
// @Summary Latest orders as a status timeline
// @Tags dashboard
// @Produce json
// @Success 200 {array} TimelineEntry
// @Failure 503 {string} string "Backend unavailable"
// @Router /dashboard/timeline [get]
func GetOrderTimelineHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := backend.Orders(r.Context())
	if err != nil {
		log.Printf("failed to load orders: %v", err)
		http.Error(w, "failed to load orders", http.StatusServiceUnavailable)
		return
	}
	reverseOrders(orders)
	if len(orders) > timelineLength {
		orders = orders[:timelineLength]
	}

	now := time.Now()
	entries := make([]TimelineEntry, len(orders))
	for i, o := range orders {
		status := o.Status
		if status == "" {
			status = "-"
		}
		entries[i] = TimelineEntry{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      status,
			CreatedAt:   o.CreatedAt,
			CreatedAgo:  analytics.RelativeTime(o.CreatedAt, now),
		}
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetRevenueHandler godoc
// @Summary Revenue summary for a date range
// @Tags dashboard
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} analytics.RevenueReport
// @Failure 400 {string} string "Invalid range"
// @Failure 503 {string} string "Backend unavailable"
// @Router /dashboard/revenue [get]
func GetRevenueHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := time.Parse("2006-01-02", q.Get("start"))
	if err != nil {
		http.Error(w, "invalid start date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse("2006-01-02", q.Get("end"))
	if err != nil {
		http.Error(w, "invalid end date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end date must not precede start date", http.StatusBadRequest)
		return
	}

	feed, err := backend.Revenue(r.Context(), start, end)
	if err != nil {
		log.Printf("failed to load revenue: %v", err)
		http.Error(w, "failed to load revenue", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, analytics.SummarizeRevenue(feed.Data, feed.Total, feed.Trend))
}
