package types

import (
	"context"

	"github.com/eventscout/eventscout-api/internal/database"
	"github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/eventscout/eventscout-api/internal/services/scrapers"
	"github.com/eventscout/eventscout-api/pkg/config"
)

// ScraperRunner triggers a scrape run across all registered sources.
type ScraperRunner interface {
	Run(ctx context.Context, jobID, location, category string) (*scrapers.RunResult, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	EventService   events.EventService
	ScraperManager ScraperRunner
	Geocoder       scrapers.Geocoder
	Maps           config.MapsConfig
}
