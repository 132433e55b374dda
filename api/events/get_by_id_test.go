package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/eventscout/eventscout-api/api/types"
	"github.com/eventscout/eventscout-api/internal/models"
	eventsService "github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	registerRoute := func(engine *gin.Engine, deps *types.Dependencies) {
		engine.GET("/api/v1/events/:id", GetByID(deps))
	}

	t.Run("found", func(t *testing.T) {
		event := sampleEvent()
		deps := &types.Dependencies{
			EventService: &mockEventService{
				getByIDFunc: func(ctx context.Context, id uint) (*models.Event, error) {
					assert.Equal(t, uint(7), id)
					return &event, nil
				},
			},
		}

		w := performRequest(t, deps, http.MethodGet, "/api/v1/events/7", registerRoute)

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.SingleEventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Event)
		assert.Equal(t, uint(7), response.Event.ID)
		assert.Equal(t, "Go Meetup", response.Event.Title)
	})

	t.Run("not found", func(t *testing.T) {
		deps := &types.Dependencies{
			EventService: &mockEventService{
				getByIDFunc: func(ctx context.Context, id uint) (*models.Event, error) {
					return nil, eventsService.NewNotFoundError("event", id)
				},
			},
		}

		w := performRequest(t, deps, http.MethodGet, "/api/v1/events/42", registerRoute)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response["status"])
		assert.Equal(t, "Event not found", response["message"])
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := &types.Dependencies{EventService: &mockEventService{}}

		w := performRequest(t, deps, http.MethodGet, "/api/v1/events/abc", registerRoute)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		deps := &types.Dependencies{
			EventService: &mockEventService{
				getByIDFunc: func(ctx context.Context, id uint) (*models.Event, error) {
					return nil, errors.New("db error")
				},
			},
		}

		w := performRequest(t, deps, http.MethodGet, "/api/v1/events/7", registerRoute)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
