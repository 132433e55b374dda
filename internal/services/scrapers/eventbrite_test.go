package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventbriteScrapeWithoutKeyReturnsMocks(t *testing.T) {
	client := NewEventbriteClient(EventbriteConfig{})

	events, err := client.ScrapeEvents(context.Background(), "San Francisco, CA", "", 50)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "eventbrite", events[0].Source)
	assert.Equal(t, "mock_eb_1", events[0].SourceID)

	// Mock fallback is deterministic across calls.
	again, err := client.ScrapeEvents(context.Background(), "San Francisco, CA", "", 50)
	require.NoError(t, err)
	assert.Equal(t, events, again)
}

func TestEventbriteScrapeParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("token"))
		assert.Equal(t, "Austin, TX", r.URL.Query().Get("location.address"))
		assert.Equal(t, "102", r.URL.Query().Get("categories"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"events": [
				{
					"id": "12345",
					"name": {"text": "Go Meetup"},
					"description": {"text": "Monthly Go user group"},
					"url": "https://eventbrite.com/e/12345",
					"start": {"utc": "2025-10-01T18:00:00Z"},
					"venue": {
						"name": "Capital Factory",
						"latitude": "30.2672",
						"longitude": "-97.7431",
						"address": {"localized_area_display": "Austin, TX"}
					},
					"category": {"short_name": "technology"},
					"logo": {"url": "https://img.example.com/go.png"}
				},
				{
					"id": "",
					"name": {"text": "Broken event without id"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewEventbriteClient(EventbriteConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	events, err := client.ScrapeEvents(context.Background(), "Austin, TX", "technology", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "Go Meetup", event.Title)
	assert.Equal(t, "eventbrite_12345", event.SourceID)
	assert.Equal(t, "Capital Factory, Austin, TX", event.Location)
	assert.Equal(t, 30.2672, event.Latitude)
	assert.Equal(t, -97.7431, event.Longitude)
	assert.Equal(t, "technology", event.Category)
	assert.Equal(t, time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC), event.Date)
}

func TestEventbriteScrapeFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewEventbriteClient(EventbriteConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	events, err := client.ScrapeEvents(context.Background(), "Austin, TX", "", 10)
	require.NoError(t, err)
	assert.Equal(t, "mock_eb_1", events[0].SourceID)
}

func TestMockGeocoder(t *testing.T) {
	geocoder := NewMockGeocoder(37.7749, -122.4194, "")

	result, err := geocoder.Geocode(context.Background(), "Mission District")
	require.NoError(t, err)
	assert.Equal(t, 37.7749, result.Latitude)
	assert.Equal(t, -122.4194, result.Longitude)
	assert.Equal(t, "Mission District, San Francisco, CA, USA", result.FormattedAddress)

	_, err = geocoder.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}
