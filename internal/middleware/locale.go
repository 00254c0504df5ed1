package middleware

import (
	"github.com/gin-gonic/gin"

	"storefront-service/internal/i18n"
	"storefront-service/internal/models"
)

const (
	localeContextKey = "locale"
	// LocaleCookie is the cookie the website's language switcher persists the choice in
	LocaleCookie = "i18nextLng"
)

// Locale resolves the request locale from the lang query parameter, the
// language cookie and Accept-Language, in that order.
func Locale(defaultLocale models.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(LocaleCookie)
		locale := i18n.Resolve(defaultLocale, c.GetHeader("Accept-Language"), c.Query("lang"), cookie)

		c.Set(localeContextKey, locale)
		c.Header("Content-Language", locale.String())
		c.Next()
	}
}

// GetLocale returns the locale resolved by the Locale middleware
func GetLocale(c *gin.Context) models.Locale {
	if value, exists := c.Get(localeContextKey); exists {
		if locale, ok := value.(models.Locale); ok {
			return locale
		}
	}
	return models.DefaultLocale
}
