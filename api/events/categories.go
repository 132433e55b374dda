package events

import (
	"net/http"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
)

// Categories returns all distinct event categories
// @Summary      Get event categories
// @Description  Get the distinct category names of all stored events
// @Tags         events
// @Accept       json
// @Produce      json
// @Success      200 {object} types.CategoriesResponse "Category list"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/events/categories [get]
func Categories(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EventService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Event service not available",
			})
			return
		}

		categories, err := deps.EventService.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to fetch categories",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.CategoriesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Categories retrieved successfully",
			},
			Categories: categories,
			Count:      len(categories),
		})
	}
}
