package twopiapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/domain"
	portsrepo "github.com/twopi/moneycore/internal/core/ports/repositories"
	"github.com/twopi/moneycore/internal/dto"
	"github.com/twopi/moneycore/internal/utils/mapping"
)

// Ensure Client implements the CategoryReader port.
var _ portsrepo.CategoryReader = (*Client)(nil)

// ListCategories retrieves all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var resp []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/category", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if err := validateEach(c, resp); err != nil {
		return nil, fmt.Errorf("invalid category payload: %w", err)
	}
	return mapping.ToDomainCategorySlice(resp), nil
}

// CreateCategory registers a new category and returns its ID, generating one
// when absent.
func (c *Client) CreateCategory(ctx context.Context, category domain.Category) (string, error) {
	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}

	req := dto.CreateCategoryRequest{
		ID:    category.CategoryID,
		Name:  category.Name,
		Group: category.Group,
		Icon:  category.Icon,
	}
	if err := c.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := c.do(ctx, http.MethodPost, "/category", nil, req, nil); err != nil {
		return "", fmt.Errorf("failed to create category %q: %w", category.Name, err)
	}
	return category.CategoryID, nil
}

// DeleteCategory removes a category by ID.
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	query := url.Values{"id": {categoryID}}
	if err := c.do(ctx, http.MethodDelete, "/category", query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %q: %w", categoryID, err)
	}
	return nil
}
