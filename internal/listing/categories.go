package listing

import (
	"slices"

	"storefront-service/internal/i18n"
	"storefront-service/internal/models"
)

// AllCategories is the key of the synthetic option matching every product
const AllCategories = ""

type CategoryOption = models.CategoryOption

// AllOption returns the synthetic "all" option labelled for the locale
func AllOption(locale models.Locale) CategoryOption {
	return CategoryOption{Key: AllCategories, Label: i18n.T(locale, i18n.MsgAllProducts)}
}

// ExtractCategories returns the category selector options for the locale:
// the "all" option first, then every distinct non-blank category of the locale
// in collation order. Products without a category in this locale contribute nothing.
func ExtractCategories(products []models.Product, locale models.Locale) []CategoryOption {
	seen := make(map[string]struct{}, len(products))
	labels := make([]string, 0, len(products))
	for _, p := range products {
		label := LocalField(p, FieldCategory, locale)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	collator := newCollator(locale)
	slices.SortStableFunc(labels, collator.CompareString)

	options := make([]CategoryOption, 0, len(labels)+1)
	options = append(options, AllOption(locale))
	for _, label := range labels {
		options = append(options, CategoryOption{Key: label, Label: label})
	}
	return options
}

// HasCategory reports whether key is one of the options
func HasCategory(options []CategoryOption, key string) bool {
	return slices.ContainsFunc(options, func(o CategoryOption) bool { return o.Key == key })
}
