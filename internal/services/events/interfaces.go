package events

import (
	"context"
	"time"

	"github.com/eventscout/eventscout-api/internal/models"
)

// SearchFilters narrows an event search. Zero-valued fields are not
// applied.
type SearchFilters struct {
	// Term matches against title or description.
	Term string
	// Category matches exactly.
	Category string
	// DateFrom is the inclusive lower bound on the event date.
	DateFrom *time.Time
	// Location matches as a substring of the stored location.
	Location string
	// Limit caps the result count; non-positive means the default cap.
	Limit int
}

// EventRepository defines the interface for event persistence
type EventRepository interface {
	Search(ctx context.Context, filters SearchFilters) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Categories(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, event *models.Event) error
	Count(ctx context.Context) (int64, error)
}

// EventService defines the business logic interface for event operations
type EventService interface {
	Search(ctx context.Context, filters SearchFilters) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Categories(ctx context.Context) ([]string, error)

	// SaveBatch upserts scraped events keyed on their source id and
	// returns how many were stored.
	SaveBatch(ctx context.Context, events []models.Event) (int, error)
}
