package listing

import (
	"slices"

	"storefront-service/internal/models"
)

type namedProduct struct {
	product models.Product
	name    string
}

// Sort returns a new slice ordered by key. SortNone keeps the input order.
// Ties keep their input order, so sorting twice with the same key is a no-op.
func Sort(products []models.Product, key models.SortKey, locale models.Locale) []models.Product {
	switch key {
	case models.SortNameAsc, models.SortNameDesc:
		return sortByName(products, key == models.SortNameDesc, locale)
	case models.SortNewest:
		result := slicesClone(products)
		slices.SortStableFunc(result, func(a, b models.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
		return result
	case models.SortOldest:
		result := slicesClone(products)
		slices.SortStableFunc(result, func(a, b models.Product) int {
			return a.CreatedAt.Compare(b.CreatedAt.Time)
		})
		return result
	}
	return slicesClone(products)
}

func sortByName(products []models.Product, descending bool, locale models.Locale) []models.Product {
	named := make([]namedProduct, len(products))
	for i, p := range products {
		named[i] = namedProduct{product: p, name: DisplayField(p, FieldName, locale)}
	}

	collator := newCollator(locale)
	slices.SortStableFunc(named, func(a, b namedProduct) int {
		cmp := collator.CompareString(a.name, b.name)
		if descending {
			return -cmp
		}
		return cmp
	})

	result := make([]models.Product, len(named))
	for i, n := range named {
		result[i] = n.product
	}
	return result
}
