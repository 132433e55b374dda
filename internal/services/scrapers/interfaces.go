package scrapers

import (
	"context"

	"github.com/eventscout/eventscout-api/internal/models"
)

// EventScraper defines the interface for fetching events from an
// external source.
type EventScraper interface {
	// Name identifies the source (stored in models.Event.Source).
	Name() string

	// ScrapeEvents fetches up to maxEvents events around location,
	// optionally narrowed to a category.
	ScrapeEvents(ctx context.Context, location, category string, maxEvents int) ([]models.Event, error)
}

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}
