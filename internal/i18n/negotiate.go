package i18n

import (
	"golang.org/x/text/language"

	"storefront-service/internal/models"
)

var (
	supportedTags = []language.Tag{language.English, language.Arabic}
	tagLocales    = []models.Locale{models.LocaleEnglish, models.LocaleArabic}
	matcher       = language.NewMatcher(supportedTags)
)

// MatchAcceptLanguage picks the best storefront locale for an Accept-Language header.
// The boolean is false when the header names no supported language.
func MatchAcceptLanguage(header string) (models.Locale, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return tagLocales[index], true
}

// Resolve returns the first recognised locale among the explicit candidates,
// then the Accept-Language header, then the fallback.
func Resolve(fallback models.Locale, acceptLanguage string, candidates ...string) models.Locale {
	for _, candidate := range candidates {
		if locale, ok := models.ParseLocale(candidate); ok {
			return locale
		}
	}
	if locale, ok := MatchAcceptLanguage(acceptLanguage); ok {
		return locale
	}
	return fallback
}
