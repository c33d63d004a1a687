package models

// PriceOption is one priced size variant of a product.
type PriceOption struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Product represents a product entity in the menu catalog.
type Product struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price,omitempty"`
	MenuID       string        `json:"menuId"`
	TopProduct   bool          `json:"topProduct,omitempty"`
	Image        string        `json:"image,omitempty"`
	OptionsTitle string        `json:"optionsTitle,omitempty"`
	Options      []PriceOption `json:"options,omitempty"`
}

// Category is a menu category products reference via MenuID.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
