package events

import (
	"net/http"
	"strconv"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/gin-gonic/gin"
)

// GetByID returns a single event
// @Summary      Get event by ID
// @Description  Get a single event by its numeric database ID
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} types.SingleEventResponse "The event"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} types.ErrorResponse "Event not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/events/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Event ID must be a positive integer",
			})
			return
		}

		if deps.EventService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Event service not available",
			})
			return
		}

		event, err := deps.EventService.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if events.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Event not found",
				})
				return
			}

			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to fetch event",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.SingleEventResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Event retrieved successfully",
			},
			Event: types.FromModel(event),
		})
	}
}
