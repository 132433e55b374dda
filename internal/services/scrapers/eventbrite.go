package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eventscout/eventscout-api/internal/models"
)

// eventbriteCategories maps our category names to Eventbrite ids.
var eventbriteCategories = map[string]string{
	"technology": "102",
	"business":   "101",
	"art":        "105",
	"music":      "103",
	"sports":     "108",
}

// EventbriteClient scrapes events from the Eventbrite API. Without an
// API key it serves deterministic mock events so the rest of the
// pipeline stays exercisable.
type EventbriteClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// EventbriteConfig holds configuration for the Eventbrite client
type EventbriteConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

var _ EventScraper = (*EventbriteClient)(nil)

// NewEventbriteClient creates a new Eventbrite API client
func NewEventbriteClient(cfg EventbriteConfig) *EventbriteClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.eventbriteapi.com/v3"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &EventbriteClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

func (c *EventbriteClient) Name() string {
	return "eventbrite"
}

func (c *EventbriteClient) ScrapeEvents(ctx context.Context, location, category string, maxEvents int) ([]models.Event, error) {
	if c.apiKey == "" {
		log.Printf("[WARN] No Eventbrite API key configured, returning mock events")
		return c.mockEvents(), nil
	}

	if maxEvents <= 0 || maxEvents > 50 {
		maxEvents = 50
	}

	params := url.Values{}
	params.Set("location.address", location)
	params.Set("location.within", "25km")
	params.Set("expand", "venue,organizer,format,category")
	params.Set("sort_by", "date")
	params.Set("page_size", strconv.Itoa(maxEvents))
	params.Set("token", c.apiKey)
	if id, ok := eventbriteCategories[category]; ok {
		params.Set("categories", id)
	}

	fullURL := fmt.Sprintf("%s/events/search/?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] Eventbrite request failed, falling back to mock events: %v", err)
		return c.mockEvents(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Eventbrite API returned status %d, falling back to mock events", resp.StatusCode)
		return c.mockEvents(), nil
	}

	var payload eventbriteSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	events := make([]models.Event, 0, len(payload.Events))
	for _, raw := range payload.Events {
		event, err := parseEventbriteEvent(raw)
		if err != nil {
			log.Printf("[WARN] Skipping unparseable Eventbrite event: %v", err)
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func parseEventbriteEvent(raw eventbriteEvent) (models.Event, error) {
	if raw.ID == "" {
		return models.Event{}, fmt.Errorf("event has no id")
	}

	date, err := time.Parse(time.RFC3339, raw.Start.UTC)
	if err != nil {
		return models.Event{}, fmt.Errorf("parsing start time of event %s: %w", raw.ID, err)
	}

	location := raw.Venue.Name
	if raw.Venue.Address.LocalizedAreaDisplay != "" {
		if location != "" {
			location += ", "
		}
		location += raw.Venue.Address.LocalizedAreaDisplay
	}

	latitude, _ := strconv.ParseFloat(raw.Venue.Latitude, 64)
	longitude, _ := strconv.ParseFloat(raw.Venue.Longitude, 64)

	category := "other"
	if raw.Category.ShortName != "" {
		category = raw.Category.ShortName
	}

	return models.Event{
		Title:       raw.Name.Text,
		Description: raw.Description.Text,
		Date:        date,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Category:    category,
		Source:      "eventbrite",
		SourceID:    "eventbrite_" + raw.ID,
		URL:         raw.URL,
		ImageURL:    raw.Logo.URL,
	}, nil
}

// mockEvents returns fixed sample events. Source ids are stable so
// repeated scrapes upsert instead of duplicating.
func (c *EventbriteClient) mockEvents() []models.Event {
	return []models.Event{
		{
			Title:       "Tech Startup Networking Night",
			Description: "Connect with fellow entrepreneurs and tech enthusiasts in the heart of Silicon Valley.",
			Date:        time.Date(2025, 9, 15, 18, 0, 0, 0, time.UTC),
			Location:    "San Francisco, CA",
			Latitude:    37.7849,
			Longitude:   -122.4094,
			Category:    "technology",
			Source:      "eventbrite",
			SourceID:    "mock_eb_1",
			URL:         "https://eventbrite.com/mock-event-1",
			ImageURL:    "https://via.placeholder.com/300x150?text=Tech+Networking",
		},
		{
			Title:       "Digital Marketing Workshop",
			Description: "Learn the latest strategies in digital marketing and social media.",
			Date:        time.Date(2025, 9, 18, 14, 0, 0, 0, time.UTC),
			Location:    "San Francisco, CA",
			Latitude:    37.7749,
			Longitude:   -122.4194,
			Category:    "business",
			Source:      "eventbrite",
			SourceID:    "mock_eb_2",
			URL:         "https://eventbrite.com/mock-event-2",
			ImageURL:    "https://via.placeholder.com/300x150?text=Marketing+Workshop",
		},
	}
}

// Wire types for the Eventbrite search API.

type eventbriteSearchResponse struct {
	Events []eventbriteEvent `json:"events"`
}

type eventbriteEvent struct {
	ID          string             `json:"id"`
	Name        eventbriteText     `json:"name"`
	Description eventbriteText     `json:"description"`
	URL         string             `json:"url"`
	Start       eventbriteStart    `json:"start"`
	Venue       eventbriteVenue    `json:"venue"`
	Category    eventbriteCategory `json:"category"`
	Logo        eventbriteLogo     `json:"logo"`
}

type eventbriteText struct {
	Text string `json:"text"`
}

type eventbriteStart struct {
	UTC string `json:"utc"`
}

type eventbriteVenue struct {
	Name      string            `json:"name"`
	Latitude  string            `json:"latitude"`
	Longitude string            `json:"longitude"`
	Address   eventbriteAddress `json:"address"`
}

type eventbriteAddress struct {
	LocalizedAreaDisplay string `json:"localized_area_display"`
}

type eventbriteCategory struct {
	ShortName string `json:"short_name"`
}

type eventbriteLogo struct {
	URL string `json:"url"`
}
