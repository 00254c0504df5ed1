package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/i18n"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

func respondError(c *gin.Context, status int, code string, message i18n.MessageID) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    code,
			Message: i18n.T(middleware.GetLocale(c), message),
		},
	})
}

// respondServiceError maps service errors to HTTP responses
func respondServiceError(c *gin.Context, err error, fallback i18n.MessageID) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", i18n.MsgProductNotFound)
	case errors.Is(err, services.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, "SESSION_NOT_FOUND", i18n.MsgSessionNotFound)
	case errors.Is(err, services.ErrInvalidAction):
		respondError(c, http.StatusBadRequest, "INVALID_ACTION", i18n.MsgInvalidAction)
	case errors.Is(err, services.ErrUpstream):
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", fallback)
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
