package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-service/internal/clients"
	"storefront-service/internal/config"
	"storefront-service/internal/events"
	"storefront-service/internal/handlers"
	"storefront-service/internal/middleware"
	"storefront-service/internal/repository"
	"storefront-service/internal/services"

	gosharedmw "github.com/Tesseract-Nexus/go-shared/middleware"
	"github.com/Tesseract-Nexus/go-shared/tracing"
)

// @title Storefront Listing API
// @description Bilingual (English/Arabic) product catalogue for the public storefront
// @host localhost:8080
// @BasePath /api/v1

func main() {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, reading configuration from the environment")
	}

	cfg := config.Load()

	// Structured logs for services and clients
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.IsProduction() {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client (optional)
	var redisClient *redis.Client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Invalid REDIS_URL: %v (running without Redis)", err)
	} else {
		if cfg.RedisPassword != "" {
			redisOpts.Password = cfg.RedisPassword
		}
		redisClient = redis.NewClient(redisOpts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("WARNING: Redis unreachable: %v (catalog cache off, sessions kept in memory)", err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			log.Println("✓ Redis connected")
		}
		cancel()
	}

	// Tracing
	var tracerProvider *tracing.TracerProvider
	if cfg.IsProduction() {
		tracerProvider, err = tracing.InitTracer(tracing.ProductionConfig("storefront-service"))
	} else {
		tracerProvider, err = tracing.InitTracer(tracing.DefaultConfig("storefront-service"))
	}
	if err != nil {
		log.Printf("WARNING: Tracing disabled: %v", err)
	} else {
		log.Println("✓ Tracing enabled")
	}

	// Catalog backend, cache and browse sessions
	catalogClient := clients.NewCatalogClient(clients.CatalogClientConfig{
		BaseURL:    cfg.CatalogAPIURL,
		Timeout:    cfg.UpstreamTimeout,
		RetryCount: cfg.UpstreamRetryCount,
	}, logger)
	catalogRepo := repository.NewCatalogRepository(catalogClient, redisClient, cfg.CatalogCacheTTL, logger)
	browseRepo := repository.NewBrowseRepository(redisClient, cfg.BrowseSessionTTL, logger)
	log.Printf("✓ Catalog client initialized (%s)", cfg.CatalogAPIURL)

	storefrontService := services.NewStorefrontService(catalogRepo, browseRepo, cfg.AssetBaseURL, cfg.PageSize, logger)

	// Catalog change events only if NATS_URL is set
	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()
	var subscriber *events.CatalogEventSubscriber
	if cfg.NATSURL != "" {
		subscriber, err = events.NewCatalogEventSubscriber(cfg.NATSURL, storefrontService, logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize catalog event subscriber: %v (cache relies on TTL only)", err)
		} else if err := subscriber.Start(subscriberCtx); err != nil {
			log.Printf("WARNING: Failed to start catalog event subscriber: %v", err)
		} else {
			log.Println("✓ Catalog event subscriber started (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping catalog event subscription")
	}

	storefrontHandler := handlers.NewStorefrontHandler(storefrontService)
	browseHandler := handlers.NewBrowseHandler(storefrontService)
	healthHandler := handlers.NewHealthHandler(catalogRepo)

	// HTTP metrics exposed on /metrics
	metrics := gosharedmw.InitGlobalMetrics("tesseract", "storefront_service")
	log.Println("✓ Metrics registered")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gosharedmw.SecurityHeaders())

	// Observability middleware (metrics + tracing)
	router.Use(metrics.Middleware())
	router.Use(tracing.GinMiddleware("storefront-service"))
	router.Use(gosharedmw.CompressionMiddleware())

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware(logger))

	if redisClient != nil {
		router.Use(gosharedmw.RedisRateLimitMiddlewareWithProfile(redisClient, "standard"))
		log.Println("✓ Redis-based rate limiting enabled")
	} else {
		router.Use(gosharedmw.RateLimit())
		log.Println("✓ In-memory rate limiting enabled (Redis unavailable)")
	}

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", healthHandler.ExtendedHealthCheck)
	router.GET("/metrics", gosharedmw.Handler())

	// Public storefront endpoints, negotiated to English or Arabic
	storefront := router.Group("/api/v1/storefront")
	storefront.Use(middleware.Locale(cfg.DefaultLocale))
	{
		site := storefront.Group("/site")
		{
			site.GET("/locales", handlers.GetLocales)
			site.GET("/navigation", handlers.GetNavigation)
		}

		products := storefront.Group("/products")
		{
			products.GET("", storefrontHandler.ListProducts)
			products.GET("/export", storefrontHandler.ExportProducts)
			products.GET("/:id", storefrontHandler.GetProduct)
			products.POST("/:id/quote", storefrontHandler.RequestQuote)
		}

		categories := storefront.Group("/categories")
		{
			categories.GET("", storefrontHandler.ListCategories)
			categories.GET("/home", storefrontHandler.ListHomeCategories)
		}

		browse := storefront.Group("/browse")
		{
			browse.POST("", browseHandler.CreateSession)
			browse.GET("/:id", browseHandler.GetSession)
			browse.POST("/:id/actions", browseHandler.ApplyAction)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Stop on SIGINT/SIGTERM, draining in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Storefront service starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down storefront-service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopSubscriber()
	if subscriber != nil {
		subscriber.Close()
		log.Println("✓ Catalog event subscriber stopped")
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		} else {
			log.Println("✓ Tracer provider shut down")
		}
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Println("Storefront service stopped")
}
