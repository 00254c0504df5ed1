package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/i18n"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

type StorefrontHandler struct {
	service services.StorefrontService
}

func NewStorefrontHandler(service services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

func listingQuery(c *gin.Context) services.ListingQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = 0
	}
	return services.ListingQuery{
		Locale:   middleware.GetLocale(c),
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     models.ParseSortKey(c.Query("sort")),
		Page:     page,
	}
}

// ListProducts godoc
// @Summary List products
// @Description Filtered, sorted and paginated product listing in the requested language
// @Tags Products
// @Produce json
// @Param q query string false "Free-text search"
// @Param category query string false "Category key, empty for all"
// @Param sort query string false "none, name_asc, name_desc, newest or oldest"
// @Param page query int false "Zero-based page index" default(0)
// @Param lang query string false "en or ar"
// @Success 200 {object} models.ListingResponse
// @Failure 502 {object} models.ListingResponse
// @Router /storefront/products [get]
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	response, err := h.service.ListProducts(c.Request.Context(), listingQuery(c))
	if err != nil {
		if response == nil {
			respondServiceError(c, err, i18n.MsgLoadFailed)
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetProduct godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /storefront/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	locale := middleware.GetLocale(c)
	product, err := h.service.GetProduct(c.Request.Context(), locale, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}

	c.JSON(http.StatusOK, models.ProductDetailResponse{
		Success: true,
		Data:    product,
		Locale:  locale,
		Dir:     locale.Direction(),
	})
}

// ExportProducts godoc
// @Summary Export products
// @Description Every product matching the listing filters as an XLSX workbook
// @Tags Products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Free-text search"
// @Param category query string false "Category key"
// @Param sort query string false "Sort key"
// @Success 200 {file} file
// @Failure 502 {object} models.ErrorResponse
// @Router /storefront/products/export [get]
func (h *StorefrontHandler) ExportProducts(c *gin.Context) {
	q := listingQuery(c)
	data, err := h.service.ExportProducts(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err, i18n.MsgExportFailed)
		return
	}

	filename := fmt.Sprintf("products_%s_%s.xlsx", q.Locale, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, services.ExportContentType, data)
}

// RequestQuote godoc
// @Summary Request a quote
// @Description Acknowledges a quote request for a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.QuoteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{id}/quote [post]
func (h *StorefrontHandler) RequestQuote(c *gin.Context) {
	ack, err := h.service.RequestQuote(c.Request.Context(), middleware.GetLocale(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, models.QuoteResponse{Success: true, Data: ack})
}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /storefront/categories [get]
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	locale := middleware.GetLocale(c)
	categories, err := h.service.ListCategories(c.Request.Context(), locale)
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, models.CategoryListResponse{
		Success: true,
		Data:    categories,
		Locale:  locale,
		Dir:     locale.Direction(),
	})
}

// ListHomeCategories godoc
// @Summary List home page categories
// @Tags Categories
// @Produce json
// @Param device query string false "desktop or mobile" default(desktop)
// @Success 200 {object} models.CategoryListResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /storefront/categories/home [get]
func (h *StorefrontHandler) ListHomeCategories(c *gin.Context) {
	locale := middleware.GetLocale(c)
	categories, err := h.service.ListHomeCategories(c.Request.Context(), locale, services.ParseDevice(c.Query("device")))
	if err != nil {
		respondServiceError(c, err, i18n.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, models.CategoryListResponse{
		Success: true,
		Data:    categories,
		Locale:  locale,
		Dir:     locale.Direction(),
	})
}
