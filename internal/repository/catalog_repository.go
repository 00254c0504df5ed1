package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Tesseract-Nexus/go-shared/cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/models"
)

// Cache TTL constants for catalog snapshots
const (
	DefaultCatalogCacheTTL = 5 * time.Minute
	catalogKeyPattern      = "catalog:*"
)

// CatalogSource is the remote catalog the repository reads through
type CatalogSource interface {
	ListProducts(ctx context.Context, locale models.Locale) ([]models.Product, error)
	ListCategories(ctx context.Context, locale models.Locale) ([]models.Category, error)
	ListHomeCategories(ctx context.Context, locale models.Locale) ([]models.Category, error)
}

// CatalogRepository serves catalog snapshots, caching them in Redis when available
type CatalogRepository struct {
	source CatalogSource
	redis  *redis.Client
	cache  *cache.CacheLayer
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCatalogRepository(source CatalogSource, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *CatalogRepository {
	if ttl <= 0 {
		ttl = DefaultCatalogCacheTTL
	}
	repo := &CatalogRepository{
		source: source,
		redis:  redisClient,
		ttl:    ttl,
		logger: logger,
	}

	if redisClient != nil {
		cacheConfig := cache.CacheConfig{
			L1Enabled:  true,
			L1MaxItems: 100,
			L1TTL:      30 * time.Second,
			DefaultTTL: ttl,
			KeyPrefix:  "storefront:",
		}
		repo.cache = cache.NewCacheLayerFromClient(redisClient, cacheConfig)
	}

	return repo
}

func productsCacheKey(locale models.Locale) string {
	return fmt.Sprintf("catalog:products:%s", locale)
}

func categoriesCacheKey(locale models.Locale) string {
	return fmt.Sprintf("catalog:categories:%s", locale)
}

func homeCategoriesCacheKey(locale models.Locale) string {
	return fmt.Sprintf("catalog:categories:home:%s", locale)
}

// Products returns the full product collection
func (r *CatalogRepository) Products(ctx context.Context, locale models.Locale) ([]models.Product, error) {
	if r.cache == nil {
		return r.source.ListProducts(ctx, locale)
	}

	var products []models.Product
	err := r.cache.GetOrSetJSON(ctx, productsCacheKey(locale), &products, r.ttl, func() (any, error) {
		return r.source.ListProducts(ctx, locale)
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Categories returns every category
func (r *CatalogRepository) Categories(ctx context.Context, locale models.Locale) ([]models.Category, error) {
	return r.categories(ctx, categoriesCacheKey(locale), func() ([]models.Category, error) {
		return r.source.ListCategories(ctx, locale)
	})
}

// HomeCategories returns the categories featured on the home page
func (r *CatalogRepository) HomeCategories(ctx context.Context, locale models.Locale) ([]models.Category, error) {
	return r.categories(ctx, homeCategoriesCacheKey(locale), func() ([]models.Category, error) {
		return r.source.ListHomeCategories(ctx, locale)
	})
}

func (r *CatalogRepository) categories(ctx context.Context, key string, load func() ([]models.Category, error)) ([]models.Category, error) {
	if r.cache == nil {
		return load()
	}

	var categories []models.Category
	err := r.cache.GetOrSetJSON(ctx, key, &categories, r.ttl, func() (any, error) {
		return load()
	})
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Invalidate drops every cached catalog snapshot
func (r *CatalogRepository) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, catalogKeyPattern); err != nil {
		r.logger.WithError(err).Warn("Failed to invalidate catalog cache")
		return
	}
	r.logger.Debug("Catalog cache invalidated")
}

// RedisHealth returns the health status of Redis connection
func (r *CatalogRepository) RedisHealth(ctx context.Context) error {
	if r.redis == nil {
		return fmt.Errorf("redis not configured")
	}
	return r.redis.Ping(ctx).Err()
}

// CacheStats returns cache statistics
func (r *CatalogRepository) CacheStats() *cache.CacheStats {
	if r.cache == nil {
		return nil
	}
	stats := r.cache.Stats()
	return &stats
}
