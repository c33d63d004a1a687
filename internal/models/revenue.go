package models

// RevenuePoint is one sample of the revenue series for a date range.
type RevenuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
