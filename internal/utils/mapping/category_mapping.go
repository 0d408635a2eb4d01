package mapping

import (
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/dto"
)

// ToDomainCategory converts a wire category to a domain Category.
func ToDomainCategory(r dto.CategoryResponse) domain.Category {
	return domain.Category{
		CategoryID: r.ID,
		Name:       r.Name,
		Group:      r.Group,
		Icon:       r.Icon,
	}
}

// ToDomainCategorySlice converts a slice of wire categories to domain
// Categories.
func ToDomainCategorySlice(rs []dto.CategoryResponse) []domain.Category {
	ds := make([]domain.Category, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainCategory(r)
	}
	return ds
}
