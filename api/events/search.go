package events

import (
	"net/http"
	"time"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/gin-gonic/gin"
)

const maxSearchLimit = 100

// Search returns events matching the given filters
// @Summary      Search events
// @Description  Search stored events by free-text term, category, start date and location.
// @Description  All filters are optional; without filters the next upcoming events are returned.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        term query string false "Free-text term matched against title and description"
// @Param        category query string false "Exact category name"
// @Param        date_from query string false "Lower bound on the event date (YYYY-MM-DD)"
// @Param        location query string false "Location substring"
// @Param        limit query int false "Maximum results (default 50, max 100)"
// @Success      200 {object} types.EventsResponse "Matching events"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/events/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchEventsRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid query parameters",
				Details: err.Error(),
			})
			return
		}

		if req.Limit == 0 {
			req.Limit = 50
		}
		if req.Limit < 1 || req.Limit > maxSearchLimit {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Limit must be between 1 and 100",
			})
			return
		}

		filters := events.SearchFilters{
			Term:     req.Term,
			Category: req.Category,
			Location: req.Location,
			Limit:    req.Limit,
		}

		if req.DateFrom != "" {
			from, err := time.Parse("2006-01-02", req.DateFrom)
			if err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "date_from must be in YYYY-MM-DD format",
				})
				return
			}
			filters.DateFrom = &from
		}

		if deps.EventService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Event service not available",
			})
			return
		}

		results, err := deps.EventService.Search(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to search events",
				Details: err.Error(),
			})
			return
		}

		transformed := types.FromModelList(results)

		c.JSON(http.StatusOK, types.EventsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Events retrieved successfully",
			},
			Events: transformed,
			Count:  len(transformed),
		})
	}
}
