// Package listing implements the storefront product listing: display projection,
// category extraction, filtering, sorting, pagination and the view state machine.
// Everything here is pure and synchronous.
package listing

import (
	"strings"

	"storefront-service/internal/i18n"
	"storefront-service/internal/models"
)

// Field is a bilingual text field of a product
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
)

func variants(p models.Product, field Field) (en, ar string) {
	switch field {
	case FieldName:
		return p.NameEN, p.NameAR
	case FieldDescription:
		return p.DescriptionEN, p.DescriptionAR
	case FieldCategory:
		return p.CategoryEN, p.CategoryAR
	}
	return "", ""
}

// DisplayField returns the field in the active locale, falling back to the other
// locale when blank. Returns "" only when both variants are blank.
func DisplayField(p models.Product, field Field, locale models.Locale) string {
	en, ar := variants(p, field)
	primary, secondary := en, ar
	if locale == models.LocaleArabic {
		primary, secondary = ar, en
	}
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	if strings.TrimSpace(secondary) != "" {
		return secondary
	}
	return ""
}

// LocalField returns the field in exactly the given locale, without fallback
func LocalField(p models.Product, field Field, locale models.Locale) string {
	en, ar := variants(p, field)
	if locale == models.LocaleArabic {
		return strings.TrimSpace(ar)
	}
	return strings.TrimSpace(en)
}

// DisplayName is DisplayField for the name, with a numbered placeholder.
// index is the zero-based position of the product in the listing.
func DisplayName(p models.Product, locale models.Locale, index int) string {
	if name := DisplayField(p, FieldName, locale); name != "" {
		return name
	}
	return i18n.T(locale, i18n.MsgProductFallback, index+1)
}

// DetailName is DisplayField for the name of a product shown on its own,
// with an unnumbered placeholder
func DetailName(p models.Product, locale models.Locale) string {
	if name := DisplayField(p, FieldName, locale); name != "" {
		return name
	}
	return i18n.T(locale, i18n.MsgProductUnnamed)
}

// DisplayCategory is DisplayField for the category, with a placeholder
func DisplayCategory(p models.Product, locale models.Locale) string {
	if category := DisplayField(p, FieldCategory, locale); category != "" {
		return category
	}
	return i18n.T(locale, i18n.MsgNoCategory)
}
