package models

type User struct {
	ID      string          `json:"_id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address DeliveryAddress `json:"address"`
}
