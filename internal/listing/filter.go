package listing

import (
	"strings"

	"storefront-service/internal/models"
)

// Filter returns the products matching both the category and the free-text query,
// in input order. The "all" category and a blank query match everything.
// Category keys compare trimmed, the way ExtractCategories builds them.
func Filter(products []models.Product, query, category string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	if needle == "" && category == AllCategories {
		return slicesClone(products)
	}

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, category) && matchesQuery(p, needle) {
			result = append(result, p)
		}
	}
	return result
}

// matchesCategory expects category to be trimmed already
func matchesCategory(p models.Product, category string) bool {
	if category == AllCategories {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(p.CategoryEN), category) ||
		strings.EqualFold(strings.TrimSpace(p.CategoryAR), category)
}

// matchesQuery expects needle to be trimmed and lower-cased already
func matchesQuery(p models.Product, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{p.NameEN, p.NameAR, p.DescriptionEN, p.DescriptionAR, p.CategoryEN, p.CategoryAR} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func slicesClone(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return append(make([]models.Product, 0, len(products)), products...)
}
