package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/i18n"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
)

var navigationRoutes = []struct {
	name  string
	path  string
	label i18n.MessageID
}{
	{"home", "/", i18n.MsgNavHome},
	{"about", "/about", i18n.MsgNavAbout},
	{"products", "/products", i18n.MsgNavProducts},
	{"industries", "/industries", i18n.MsgNavIndustries},
	{"contact", "/contact", i18n.MsgNavContact},
}

// GetLocales godoc
// @Summary Available languages
// @Tags Site
// @Produce json
// @Success 200 {object} models.LanguagesResponse
// @Router /storefront/site/locales [get]
func GetLocales(c *gin.Context) {
	c.JSON(http.StatusOK, models.LanguagesResponse{
		Success: true,
		Data:    models.AvailableLanguages(),
		Current: middleware.GetLocale(c),
	})
}

// GetNavigation godoc
// @Summary Site navigation
// @Tags Site
// @Produce json
// @Success 200 {object} models.NavigationResponse
// @Router /storefront/site/navigation [get]
func GetNavigation(c *gin.Context) {
	locale := middleware.GetLocale(c)

	links := make([]models.NavigationLink, 0, len(navigationRoutes))
	for _, route := range navigationRoutes {
		links = append(links, models.NavigationLink{
			Name:  route.name,
			Path:  route.path,
			Label: i18n.T(locale, route.label),
		})
	}

	c.JSON(http.StatusOK, models.NavigationResponse{
		Success:    true,
		Data:       links,
		QuoteLabel: i18n.T(locale, i18n.MsgNavRequestQuote),
		Locale:     locale,
		Dir:        locale.Direction(),
	})
}
