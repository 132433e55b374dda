package events

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const scrapeTimeout = 5 * time.Minute

// Scrape triggers a scrape run across all registered sources
// @Summary      Trigger an event scrape
// @Description  Starts an asynchronous scrape of all configured event sources.
// @Description  The scrape continues in the background; results land in the events table.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body types.ScrapeRequest false "Optional location and category overrides"
// @Success      202 {object} types.ScrapeResponse "Scrape accepted"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/events/scrape [post]
func Scrape(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ScrapeRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid request format",
					Details: err.Error(),
				})
				return
			}
		}

		if deps.ScraperManager == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Scraper service not available",
			})
			return
		}

		jobID := uuid.NewString()

		// Run detached from the request context so the scrape survives
		// the client disconnecting.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
			defer cancel()

			if _, err := deps.ScraperManager.Run(ctx, jobID, req.Location, req.Category); err != nil {
				log.Printf("[ERROR] Scrape job %s failed: %v", jobID, err)
			}
		}()

		c.JSON(http.StatusAccepted, types.ScrapeResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusPending,
				Message: "Scrape started",
			},
			JobID: jobID,
		})
	}
}
