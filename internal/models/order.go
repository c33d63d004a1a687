package models

import "time"

// Order statuses as the ordering backend reports them.
const (
	StatusPending   = "pending"
	StatusReady     = "ready"
	StatusOnTheWay  = "on the way"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// DeliveryAddress is the delivery destination attached to an order or user.
type DeliveryAddress struct {
	Street   string `json:"street"`
	Postcode string `json:"postcode"`
	Floor    string `json:"floor"`
}

// OrderItem references a product by id; descriptive fields live on the
// product record and are joined on at render time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents an order entity as fetched from the ordering backend.
type Order struct {
	ID          string          `json:"_id"`
	OrderNumber int             `json:"orderNumber"`
	Products    []OrderItem     `json:"products"`
	TotalPrice  float64         `json:"totalPrice"`
	Payment     string          `json:"payment"`
	Delivery    DeliveryAddress `json:"delivery"`
	Status      string          `json:"status,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
