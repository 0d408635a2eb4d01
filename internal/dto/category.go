package dto

// CategoryResponse is the wire form of a category as served by the twopi API.
type CategoryResponse struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Group string `json:"group"`
	Icon  string `json:"icon"`
}

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name" validate:"required"`
	Group string `json:"group"`
	Icon  string `json:"icon"`
}
