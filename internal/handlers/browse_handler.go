package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/i18n"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

// BrowseHandler serves server-held listing sessions
type BrowseHandler struct {
	service services.StorefrontService
}

func NewBrowseHandler(service services.StorefrontService) *BrowseHandler {
	return &BrowseHandler{service: service}
}

// CreateSession godoc
// @Summary Start a browse session
// @Description Loads the catalog once; a failed load yields a session in the error state
// @Tags Browse
// @Produce json
// @Success 201 {object} models.BrowseSessionResponse
// @Router /storefront/browse [post]
func (h *BrowseHandler) CreateSession(c *gin.Context) {
	session, err := h.service.CreateBrowseSession(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusCreated, models.BrowseSessionResponse{Success: true, Data: session})
}

// GetSession godoc
// @Summary Get a browse session
// @Tags Browse
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.BrowseSessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/browse/{id} [get]
func (h *BrowseHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetBrowseSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, models.BrowseSessionResponse{Success: true, Data: session})
}

// ApplyAction godoc
// @Summary Apply a browse action
// @Tags Browse
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param action body models.BrowseAction true "search, sort, page or locale"
// @Success 200 {object} models.BrowseSessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/browse/{id}/actions [post]
func (h *BrowseHandler) ApplyAction(c *gin.Context) {
	var action models.BrowseAction
	if err := c.ShouldBindJSON(&action); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", i18n.MsgInvalidAction)
		return
	}

	session, err := h.service.ApplyBrowseAction(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, models.BrowseSessionResponse{Success: true, Data: session})
}
