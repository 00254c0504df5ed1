package listing

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront-service/internal/models"
)

// newCollator returns a collator for the locale.
// Collators keep internal buffers, so every sort gets its own.
func newCollator(locale models.Locale) *collate.Collator {
	tag := language.English
	if locale == models.LocaleArabic {
		tag = language.Arabic
	}
	return collate.New(tag, collate.IgnoreCase)
}
