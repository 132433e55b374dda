package maps

import (
	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers maps routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/maps/config
	router.GET("/config", GetConfig(deps))

	// GET /api/v1/maps/geocode
	router.GET("/geocode", Geocode(deps))
}
