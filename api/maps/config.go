package maps

import (
	"net/http"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
)

// GetConfig returns map rendering defaults
// @Summary      Get map configuration
// @Description  Get the default map center, zoom level and available base map styles
// @Tags         maps
// @Accept       json
// @Produce      json
// @Success      200 {object} types.MapConfig "Map configuration"
// @Router       /api/v1/maps/config [get]
func GetConfig(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.MapConfig{
			DefaultCenter: types.Coordinates{
				Latitude:  deps.Maps.DefaultLatitude,
				Longitude: deps.Maps.DefaultLongitude,
			},
			DefaultZoom: deps.Maps.DefaultZoom,
			MapStyles: []types.MapStyle{
				{Name: "Default", ID: "default"},
				{Name: "Satellite", ID: "satellite"},
				{Name: "Terrain", ID: "terrain"},
			},
		})
	}
}
