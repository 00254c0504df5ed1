package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/internal/models"
)

func TestT(t *testing.T) {
	assert.Equal(t, "All Products", T(models.LocaleEnglish, MsgAllProducts))
	assert.Equal(t, "جميع المنتجات", T(models.LocaleArabic, MsgAllProducts))
	assert.Equal(t, "Product 3", T(models.LocaleEnglish, MsgProductFallback, 3))
	assert.Equal(t, "منتج 3", T(models.LocaleArabic, MsgProductFallback, 3))
	assert.Equal(t, "Quote requested for: Centrifuge", T(models.LocaleEnglish, MsgQuoteRequested, "Centrifuge"))
	assert.Equal(t, "unknown.key", T(models.LocaleArabic, MessageID("unknown.key")))
}

func TestCatalog_LocalesHaveSameKeys(t *testing.T) {
	for id := range catalog[models.LocaleEnglish] {
		_, ok := catalog[models.LocaleArabic][id]
		assert.True(t, ok, "missing arabic message %s", id)
	}
}

func TestSortOptions(t *testing.T) {
	options := SortOptions(models.LocaleArabic)
	assert.Len(t, options, len(models.SortKeys))
	assert.Equal(t, models.SortNameAsc, options[1].Key)
	assert.Equal(t, "أ إلى ي", options[1].Label)
	assert.Equal(t, "Z to A", SortLabel(models.LocaleEnglish, models.SortNameDesc))
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header   string
		expected models.Locale
		ok       bool
	}{
		{"ar-SA,ar;q=0.9,en;q=0.8", models.LocaleArabic, true},
		{"en-US,en;q=0.9", models.LocaleEnglish, true},
		{"fr-FR,ar;q=0.5", models.LocaleArabic, true},
		{"", "", false},
	}

	for _, tt := range tests {
		locale, ok := MatchAcceptLanguage(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		if tt.ok {
			assert.Equal(t, tt.expected, locale, tt.header)
		}
	}
}

func TestResolve_Precedence(t *testing.T) {
	assert.Equal(t, models.LocaleArabic, Resolve(models.LocaleEnglish, "en", "ar", "en"))
	assert.Equal(t, models.LocaleEnglish, Resolve(models.LocaleEnglish, "ar", "", "en"))
	assert.Equal(t, models.LocaleArabic, Resolve(models.LocaleEnglish, "ar", "", "xx"))
	assert.Equal(t, models.LocaleArabic, Resolve(models.LocaleArabic, "", ""))
}
