package domain

// Category groups transaction items for reporting.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	Group      string `json:"group"` // Display grouping (e.g., "Essentials")
	Icon       string `json:"icon"`  // Icon identifier for the UI layer
}
