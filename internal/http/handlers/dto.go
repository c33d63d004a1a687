package handlers

import (
	"time"

	"github.com/tastykitchen/admin-api/internal/enrich"
	"github.com/tastykitchen/admin-api/internal/models"
)

type Meta struct {
	TotalCount         int      `json:"total_count"`
	UnresolvedProducts []string `json:"unresolved_products,omitempty"`
}

type OrdersResult struct {
	Data []enrich.EnrichedOrder `json:"data"`
	Meta Meta                   `json:"meta,omitempty"`
}

type TimelineEntry struct {
	ID          string    `json:"_id"`
	OrderNumber int       `json:"orderNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedAgo  string    `json:"createdAgo"`
}

type ProductRequest struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Price        float64              `json:"price,omitempty"`
	MenuID       string               `json:"menuId"`
	TopProduct   bool                 `json:"topProduct"`
	Image        string               `json:"image"`
	OptionsTitle string               `json:"optionsTitle"`
	Options      []models.PriceOption `json:"options"`
}

type ProductsSearchResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta,omitempty"`
}

type UserProfile struct {
	User      models.User              `json:"user"`
	Orders    []enrich.EnrichedOrder   `json:"orders"`
	Addresses []models.DeliveryAddress `json:"addresses"`
}
