package query

import "time"

// CurrentLocation is the sentinel location meaning "resolve using the
// caller's live position", as opposed to a named place.
const CurrentLocation = "current_location"

// DefaultMaxResults caps how many events a search asks for when the
// caller does not say otherwise.
const DefaultMaxResults = 20

// Clock supplies the current instant. Injected so time-phrase
// resolution is deterministic under test.
type Clock func() time.Time

// SearchQuery is the structured form of a free-text event search.
// It is fully determined by the input text and the clock reading.
type SearchQuery struct {
	// Location is a free-text place name, or CurrentLocation.
	// Empty means no location was mentioned.
	Location string `json:"location,omitempty"`

	// Keywords are the matched vocabulary terms, in vocabulary order.
	Keywords []string `json:"keywords,omitempty"`

	// StartTime is the inclusive lower bound of the desired event
	// window, truncated to midnight. Nil when no time phrase matched.
	StartTime *time.Time `json:"start_time,omitempty"`

	// RemoteOnly restricts results to online/virtual events.
	RemoteOnly bool `json:"remote_only"`

	// MaxResults is the positive result-count cap.
	MaxResults int `json:"max_results"`
}

// EventRecord is a normalized event as supplied by a search provider.
// Optional fields use their zero value when absent.
type EventRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	StartTime     time.Time `json:"start_time"`
	VenueName     string    `json:"venue_name,omitempty"`
	VenueCity     string    `json:"venue_city,omitempty"`
	IsOnline      bool      `json:"is_online"`
	GroupName     string    `json:"group_name"`
	GroupURL      string    `json:"group_url"`
	AttendeeCount int       `json:"attendee_count"`
	FeeAmount     float64   `json:"fee_amount,omitempty"`
	FeeCurrency   string    `json:"fee_currency,omitempty"`
}
