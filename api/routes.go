package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventscout/eventscout-api/api/events"
	"github.com/eventscout/eventscout-api/api/health"
	"github.com/eventscout/eventscout-api/api/maps"
	"github.com/eventscout/eventscout-api/api/types"
	"github.com/eventscout/eventscout-api/api/version"
	_ "github.com/eventscout/eventscout-api/docs/swagger"
	eventsService "github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/eventscout/eventscout-api/internal/services/scrapers"
	"github.com/eventscout/eventscout-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	deps.Maps = cfg.Maps

	if deps.Geocoder == nil {
		deps.Geocoder = scrapers.NewMockGeocoder(
			cfg.Maps.DefaultLatitude,
			cfg.Maps.DefaultLongitude,
			cfg.Scrapers.DefaultLocation,
		)
	}

	// Register maps routes with general rate limiting (10 req/s, burst of 20)
	mapsGroup := v1.Group("/maps")
	mapsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	maps.RegisterRoutes(mapsGroup, deps)

	// Event routes need the database
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.EventService == nil {
			initializeEventService(deps)
		}
		if deps.ScraperManager == nil {
			initializeScraperManager(deps, cfg)
		}

		// Register event routes with general rate limiting (10 req/s, burst of 20)
		// except scrape, which fans out to external APIs (1 req/s, burst of 2)
		eventGroup := v1.Group("/events")
		searchMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
		scrapeMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2)
		events.RegisterRoutes(eventGroup, deps, searchMiddleware, scrapeMiddleware)
	}

	return nil
}

// initializeEventService creates and configures the event service
func initializeEventService(deps *types.Dependencies) {
	eventRepo := eventsService.NewRepository(deps.DB.DB)
	deps.EventService = eventsService.NewService(eventRepo)
}

// initializeScraperManager creates and wires the scraper fan-out
func initializeScraperManager(deps *types.Dependencies, cfg *config.Config) {
	eventbrite := scrapers.NewEventbriteClient(scrapers.EventbriteConfig{
		APIKey:  cfg.Scrapers.Eventbrite.APIKey,
		BaseURL: cfg.Scrapers.Eventbrite.BaseURL,
		Timeout: cfg.Scrapers.Timeout,
	})

	deps.ScraperManager = scrapers.NewManager(
		deps.EventService,
		cfg.Scrapers.DefaultLocation,
		cfg.Scrapers.MaxEventsPerSource,
		eventbrite,
	)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
