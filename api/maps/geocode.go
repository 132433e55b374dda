package maps

import (
	"net/http"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
)

// Geocode resolves an address to coordinates
// @Summary      Geocode an address
// @Description  Resolve a street address to latitude/longitude coordinates
// @Tags         maps
// @Accept       json
// @Produce      json
// @Param        address query string true "Address to resolve"
// @Success      200 {object} types.GeocodeResponse "Resolved coordinates"
// @Failure      400 {object} types.ErrorResponse "Bad request - missing address"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/maps/geocode [get]
func Geocode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GeocodeRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Address is required",
			})
			return
		}

		if deps.Geocoder == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Geocoding service not available",
			})
			return
		}

		result, err := deps.Geocoder.Geocode(c.Request.Context(), req.Address)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to geocode address",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.GeocodeResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Address resolved successfully",
			},
			Result: &types.GeocodeResult{
				Address:          result.Address,
				Latitude:         result.Latitude,
				Longitude:        result.Longitude,
				FormattedAddress: result.FormattedAddress,
			},
		})
	}
}
