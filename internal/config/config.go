package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Tesseract-Nexus/go-shared/secrets"

	"storefront-service/internal/models"
)

const defaultCatalogAPIURL = "https://golden-success-backend.onrender.com"

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	RedisURL      string
	RedisPassword string

	// Catalog backend
	CatalogAPIURL      string
	AssetBaseURL       string
	UpstreamTimeout    time.Duration
	UpstreamRetryCount int

	// Listing
	PageSize      int
	DefaultLocale models.Locale

	// Caching
	CatalogCacheTTL  time.Duration
	BrowseSessionTTL time.Duration

	// Events
	NATSURL string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "24"))
	if err != nil || pageSize <= 0 {
		pageSize = 24
	}
	retryCount, err := strconv.Atoi(getEnv("UPSTREAM_RETRY_COUNT", "2"))
	if err != nil || retryCount < 0 {
		retryCount = 2
	}
	defaultLocale, _ := models.ParseLocale(getEnv("DEFAULT_LOCALE", "en"))

	catalogAPIURL := strings.TrimSuffix(getEnv("CATALOG_API_URL", defaultCatalogAPIURL), "/")

	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis - password from GCP Secret Manager if enabled
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPassword: secrets.GetRedisPassword(),

		// Catalog backend
		CatalogAPIURL:      catalogAPIURL,
		AssetBaseURL:       strings.TrimSuffix(getEnv("ASSET_BASE_URL", catalogAPIURL), "/"),
		UpstreamTimeout:    getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamRetryCount: retryCount,

		// Listing
		PageSize:      pageSize,
		DefaultLocale: defaultLocale,

		// Caching
		CatalogCacheTTL:  getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		BrowseSessionTTL: getDuration("BROWSE_SESSION_TTL", 30*time.Minute),

		// Events
		NATSURL: getEnv("NATS_URL", ""),

		// CORS
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
