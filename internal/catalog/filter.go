package catalog

import (
	"strings"

	"github.com/tastykitchen/admin-api/internal/models"
)

// CategoryAll selects every category.
const CategoryAll = "all"

// Filter is the catalog projection state: a selected category and a
// free-text search term. It holds no memo of prior results; Visible is a
// pure function of the filter and the product list.
type Filter struct {
	Category string
	Search   string
}

// Visible returns the products matching the filter: category equal to the
// selected one (or "all"), intersected with a case-insensitive name search.
func (f Filter) Visible(products []models.Product) []models.Product {
	category := f.Category
	if category == "" {
		category = CategoryAll
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.MenuID != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}
