package models

import "strings"

// Locale is one of the two display languages of the storefront
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// DefaultLocale is used when nothing else identifies the visitor's language
const DefaultLocale = LocaleEnglish

// Direction is the text direction a locale is rendered in
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// ParseLocale normalises a language code such as "ar", "AR" or "ar-SA".
// The second return value reports whether the code was recognised.
func ParseLocale(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch Locale(code) {
	case LocaleEnglish:
		return LocaleEnglish, true
	case LocaleArabic:
		return LocaleArabic, true
	}
	return DefaultLocale, false
}

// IsRTL reports whether the locale is written right-to-left
func (l Locale) IsRTL() bool {
	return l == LocaleArabic
}

func (l Locale) Direction() Direction {
	if l.IsRTL() {
		return DirectionRTL
	}
	return DirectionLTR
}

// Other returns the fallback locale for bilingual fields
func (l Locale) Other() Locale {
	if l == LocaleArabic {
		return LocaleEnglish
	}
	return LocaleArabic
}

func (l Locale) String() string {
	return string(l)
}

// Language describes a selectable storefront language
type Language struct {
	Code       Locale    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"nativeName"`
	Direction  Direction `json:"dir"`
}

// AvailableLanguages lists the languages offered by the language switcher
func AvailableLanguages() []Language {
	return []Language{
		{Code: LocaleEnglish, Name: "English", NativeName: "English", Direction: DirectionLTR},
		{Code: LocaleArabic, Name: "Arabic", NativeName: "العربية", Direction: DirectionRTL},
	}
}
