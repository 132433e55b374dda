package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a discovered event from one of the scraped sources.
type Event struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"index"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Category    string    `json:"category" gorm:"index"`

	// Source identifies the provider (eventbrite, meetup, ...);
	// SourceID is the provider's own id and dedups re-scrapes.
	Source   string `json:"source" gorm:"index"`
	SourceID string `json:"source_id" gorm:"uniqueIndex"`

	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// Upcoming reports whether the event starts at or after the given
// instant.
func (e *Event) Upcoming(now time.Time) bool {
	return !e.Date.Before(now)
}
