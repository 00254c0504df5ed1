package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/clients"
	"storefront-service/internal/i18n"
	"storefront-service/internal/listing"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

var (
	ErrUpstream        = clients.ErrUpstream
	ErrSessionNotFound = repository.ErrSessionNotFound
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidAction   = errors.New("invalid browse action")
)

var listingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_listing_requests_total",
	Help: "Product listings served, by resulting view status",
}, []string{"status"})

// CatalogStore provides catalog snapshots
type CatalogStore interface {
	Products(ctx context.Context, locale models.Locale) ([]models.Product, error)
	Categories(ctx context.Context, locale models.Locale) ([]models.Category, error)
	HomeCategories(ctx context.Context, locale models.Locale) ([]models.Category, error)
	Invalidate(ctx context.Context)
}

// SessionStore persists browse sessions
type SessionStore interface {
	Save(ctx context.Context, id string, snapshot listing.Snapshot) error
	Load(ctx context.Context, id string) (listing.Snapshot, error)
}

// ListingQuery selects one page of the product listing
type ListingQuery struct {
	Locale   models.Locale
	Query    string
	Category string
	Sort     models.SortKey
	Page     int
}

// Device selects the home page layout
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

type StorefrontService interface {
	ListProducts(ctx context.Context, q ListingQuery) (*models.ListingResponse, error)
	GetProduct(ctx context.Context, locale models.Locale, productID string) (*models.ProductCard, error)
	ListCategories(ctx context.Context, locale models.Locale) ([]models.CategoryCard, error)
	ListHomeCategories(ctx context.Context, locale models.Locale, device Device) ([]models.CategoryCard, error)
	RequestQuote(ctx context.Context, locale models.Locale, productID string) (*models.QuoteAcknowledgement, error)
	ExportProducts(ctx context.Context, q ListingQuery) ([]byte, error)
	CreateBrowseSession(ctx context.Context, locale models.Locale) (*models.BrowseSession, error)
	GetBrowseSession(ctx context.Context, sessionID string) (*models.BrowseSession, error)
	ApplyBrowseAction(ctx context.Context, sessionID string, action models.BrowseAction) (*models.BrowseSession, error)
	InvalidateCatalog(ctx context.Context)
}

type storefrontService struct {
	catalog      CatalogStore
	sessions     SessionStore
	assetBaseURL string
	pageSize     int
	logger       *logrus.Logger
	newID        func() string
}

func NewStorefrontService(catalog CatalogStore, sessions SessionStore, assetBaseURL string, pageSize int, logger *logrus.Logger) StorefrontService {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &storefrontService{
		catalog:      catalog,
		sessions:     sessions,
		assetBaseURL: assetBaseURL,
		pageSize:     pageSize,
		logger:       logger,
		newID:        newSessionID,
	}
}

// loadView fetches the catalog and returns the resolved or failed view
func (s *storefrontService) loadView(ctx context.Context, locale models.Locale) (listing.View, error) {
	view := listing.NewView(locale, s.pageSize)
	products, err := s.catalog.Products(ctx, locale)
	if err != nil {
		s.logger.WithError(err).WithField("locale", locale).Error("Failed to load product catalog")
		return view.Apply(listing.FetchFailed{Err: err}), err
	}
	return view.Apply(listing.FetchResolved{Products: products}), nil
}

// queryView applies the listing query to a freshly loaded view
func (s *storefrontService) queryView(ctx context.Context, q ListingQuery) (listing.View, error) {
	view, err := s.loadView(ctx, q.Locale)
	if err != nil {
		return view, err
	}
	return view.
		Apply(listing.SearchChanged{Query: q.Query, Category: q.Category}).
		Apply(listing.SortChanged{Sort: q.Sort}).
		Apply(listing.PageChanged{Page: q.Page}), nil
}

func (s *storefrontService) ListProducts(ctx context.Context, q ListingQuery) (*models.ListingResponse, error) {
	view, err := s.queryView(ctx, q)
	data, pagination := s.render(view)
	listingRequests.WithLabelValues(string(view.Status)).Inc()

	response := &models.ListingResponse{
		Success:    err == nil,
		Data:       data,
		Pagination: pagination,
	}
	if err != nil {
		return response, fmt.Errorf("failed to list products: %w", err)
	}
	return response, nil
}

func (s *storefrontService) GetProduct(ctx context.Context, locale models.Locale, productID string) (*models.ProductCard, error) {
	products, err := s.catalog.Products(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	for _, p := range products {
		if p.ID == productID {
			card := s.productCard(p, locale, listing.DetailName(p, locale))
			return &card, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *storefrontService) ListCategories(ctx context.Context, locale models.Locale) ([]models.CategoryCard, error) {
	categories, err := s.catalog.Categories(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return s.categoryCards(categories, locale), nil
}

func (s *storefrontService) ListHomeCategories(ctx context.Context, locale models.Locale, device Device) ([]models.CategoryCard, error) {
	categories, err := s.catalog.HomeCategories(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to list home categories: %w", err)
	}
	cards := s.categoryCards(categories, locale)
	return cards[:HomeDisplayCount(len(cards), device)], nil
}

// RequestQuote acknowledges a quote request. Nothing is submitted anywhere.
func (s *storefrontService) RequestQuote(ctx context.Context, locale models.Locale, productID string) (*models.QuoteAcknowledgement, error) {
	product, err := s.GetProduct(ctx, locale, productID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": productID,
		"locale":     locale,
	}).Info("Quote requested")

	return &models.QuoteAcknowledgement{
		ProductID: product.ID,
		Product:   product.Name,
		Message:   i18n.T(locale, i18n.MsgQuoteRequested, product.Name),
	}, nil
}

func (s *storefrontService) InvalidateCatalog(ctx context.Context) {
	s.catalog.Invalidate(ctx)
}

// render projects a view into the listing payload and its pagination
func (s *storefrontService) render(view listing.View) (*models.ListingData, *models.PaginationInfo) {
	data := &models.ListingData{
		Status:      view.Status,
		Locale:      view.Locale,
		Dir:         view.Locale.Direction(),
		Query:       view.Query,
		Category:    view.Category,
		Sort:        view.Sort,
		SortOptions: i18n.SortOptions(view.Locale),
		Categories:  view.Categories,
		Products:    []models.ProductCard{},
	}
	if data.Categories == nil {
		data.Categories = []models.CategoryOption{listing.AllOption(view.Locale)}
	}

	offset := view.Page * view.PageSize
	for i, p := range view.Current() {
		data.Products = append(data.Products, s.productCard(p, view.Locale, listing.DisplayName(p, view.Locale, offset+i)))
	}

	switch {
	case view.Status == models.StatusError:
		data.Message = i18n.T(view.Locale, i18n.MsgLoadFailed)
	case len(view.Results) == 0 && view.Status != models.StatusLoading:
		data.Message = i18n.T(view.Locale, i18n.MsgNoProducts)
	}

	totalPages := view.PageCount()
	pagination := &models.PaginationInfo{
		Page:        view.Page,
		Limit:       view.PageSize,
		Total:       int64(len(view.Results)),
		TotalPages:  totalPages,
		HasNext:     view.Page >= 0 && view.Page < totalPages-1,
		HasPrevious: view.Page > 0 && totalPages > 0,
		Window:      listing.PageWindow(view.Page, totalPages),
	}
	return data, pagination
}

func (s *storefrontService) productCard(p models.Product, locale models.Locale, name string) models.ProductCard {
	return models.ProductCard{
		ID:          p.ID,
		Name:        name,
		Description: listing.DisplayField(p, listing.FieldDescription, locale),
		Category:    listing.DisplayCategory(p, locale),
		ImageURL:    clients.ImageURL(s.assetBaseURL, p.ImagePath()),
		CreatedAt:   p.CreatedAt,
	}
}

// categoryCards projects categories into the locale, highest priority first
func (s *storefrontService) categoryCards(categories []models.Category, locale models.Locale) []models.CategoryCard {
	sorted := slices.Clone(categories)
	slices.SortStableFunc(sorted, func(a, b models.Category) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	cards := make([]models.CategoryCard, 0, len(sorted))
	for _, c := range sorted {
		cards = append(cards, models.CategoryCard{
			ID:          c.ID,
			Name:        pick(locale, c.NameEN, c.NameAR),
			Description: pick(locale, c.HomeDescriptionEN, c.HomeDescriptionAR),
			SellPoints:  pickList(locale, c.SellPointsEN, c.SellPointsAR),
			ImageURL:    clients.ImageURL(s.assetBaseURL, c.ImageURL),
			Priority:    c.Priority,
		})
	}
	return cards
}

func pick(locale models.Locale, en, ar string) string {
	primary, secondary := en, ar
	if locale == models.LocaleArabic {
		primary, secondary = ar, en
	}
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	return secondary
}

func pickList(locale models.Locale, en, ar []string) []string {
	primary, secondary := en, ar
	if locale == models.LocaleArabic {
		primary, secondary = ar, en
	}
	if len(primary) > 0 {
		return primary
	}
	return secondary
}
