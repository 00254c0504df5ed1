package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Tesseract-Nexus/go-shared/cache"
	"github.com/gin-gonic/gin"
)

const serviceName = "storefront-service"

// CatalogHealth reports the state of the catalog cache
type CatalogHealth interface {
	RedisHealth(ctx context.Context) error
	CacheStats() *cache.CacheStats
}

// HealthHandler serves the readiness endpoint
type HealthHandler struct {
	catalog CatalogHealth
}

func NewHealthHandler(catalog CatalogHealth) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// HealthCheck is the liveness probe
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// ExtendedHealthCheck returns detailed health status including Redis.
// Redis is optional, so an unreachable Redis degrades the service without failing readiness.
func (h *HealthHandler) ExtendedHealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{}
	health := gin.H{
		"status":  "healthy",
		"service": serviceName,
		"checks":  checks,
	}

	if err := h.catalog.RedisHealth(ctx); err != nil {
		checks["redis"] = gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		}
		health["status"] = "degraded"
	} else {
		checks["redis"] = gin.H{
			"status": "healthy",
		}
	}

	if stats := h.catalog.CacheStats(); stats != nil {
		checks["cache_stats"] = gin.H{
			"l1_hits":   stats.L1Hits,
			"l1_misses": stats.L1Misses,
			"l2_hits":   stats.L2Hits,
			"l2_misses": stats.L2Misses,
		}
	}

	c.JSON(http.StatusOK, health)
}
