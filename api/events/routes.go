package events

import (
	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers event routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, searchMiddleware, scrapeMiddleware gin.HandlerFunc) {
	// GET /api/v1/events/search
	router.GET("/search", searchMiddleware, Search(deps))

	// GET /api/v1/events/categories
	router.GET("/categories", searchMiddleware, Categories(deps))

	// GET /api/v1/events/:id
	router.GET("/:id", searchMiddleware, GetByID(deps))

	// POST /api/v1/events/scrape
	router.POST("/scrape", scrapeMiddleware, Scrape(deps))
}
