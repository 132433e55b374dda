package types

import (
	"time"

	"github.com/eventscout/eventscout-api/internal/models"
)

// FromModel transforms a stored event to its API representation
func FromModel(e *models.Event) *Event {
	if e == nil {
		return nil
	}

	return &Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.UTC().Format(time.RFC3339),
		Location:    e.Location,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Category:    e.Category,
		Source:      e.Source,
		URL:         e.URL,
		ImageURL:    e.ImageURL,
	}
}

// FromModelList transforms a list of stored events
func FromModelList(events []models.Event) []Event {
	result := make([]Event, 0, len(events))
	for i := range events {
		if transformed := FromModel(&events[i]); transformed != nil {
			result = append(result, *transformed)
		}
	}
	return result
}
