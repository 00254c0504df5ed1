package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/models"
)

// ErrUpstream is returned when the catalog backend cannot be reached or answers with an error
var ErrUpstream = errors.New("catalog backend unavailable")

const (
	productsPath       = "/api/v1/products/list"
	categoriesPath     = "/api/v1/categories"
	homeCategoriesPath = "/api/v1/categories/home"
)

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_catalog_requests_total",
	Help: "Requests sent to the catalog backend",
}, []string{"endpoint", "outcome"})

// CatalogClientConfig configures the catalog backend client
type CatalogClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// CatalogClient reads products and categories from the catalog backend
type CatalogClient struct {
	client *resty.Client
	logger *logrus.Logger
}

// productListResponse is the envelope the catalog backend wraps every collection in
type productListResponse struct {
	Data []models.Product `json:"data"`
}

type categoryListResponse struct {
	Data []models.Category `json:"data"`
}

// NewCatalogClient creates a new catalog client
func NewCatalogClient(cfg CatalogClientConfig, logger *logrus.Logger) *CatalogClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)

	return &CatalogClient{client: client, logger: logger}
}

// retryCondition retries transport errors and server-side failures
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

// ListProducts fetches the complete product collection
func (c *CatalogClient) ListProducts(ctx context.Context, locale models.Locale) ([]models.Product, error) {
	var result productListResponse
	if err := c.get(ctx, "products", productsPath, locale, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return []models.Product{}, nil
	}
	return result.Data, nil
}

// ListCategories fetches every category
func (c *CatalogClient) ListCategories(ctx context.Context, locale models.Locale) ([]models.Category, error) {
	var result categoryListResponse
	if err := c.get(ctx, "categories", categoriesPath, locale, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return []models.Category{}, nil
	}
	return result.Data, nil
}

// ListHomeCategories fetches the categories featured on the home page
func (c *CatalogClient) ListHomeCategories(ctx context.Context, locale models.Locale) ([]models.Category, error) {
	var result categoryListResponse
	if err := c.get(ctx, "categories_home", homeCategoriesPath, locale, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return []models.Category{}, nil
	}
	return result.Data, nil
}

func (c *CatalogClient) get(ctx context.Context, endpoint, path string, locale models.Locale, result any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept-Language", locale.String()).
		SetResult(result).
		Get(path)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		c.logger.WithError(err).WithField("endpoint", endpoint).Warn("Catalog request failed")
		return fmt.Errorf("%w: %s: %v", ErrUpstream, endpoint, err)
	}
	if resp.IsError() {
		upstreamRequests.WithLabelValues(endpoint, "http_error").Inc()
		c.logger.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode(),
		}).Warn("Catalog backend returned an error")
		return fmt.Errorf("%w: %s: status %d", ErrUpstream, endpoint, resp.StatusCode())
	}

	upstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	c.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"locale":   locale,
		"duration": resp.Time(),
	}).Debug("Catalog request completed")
	return nil
}
