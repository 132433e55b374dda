package meetup

// Wire types for the Meetup REST API.

// eventsResponse is the envelope for /find/upcoming_events.
type eventsResponse struct {
	Events []restEvent `json:"events"`
}

type restEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Time        int64     `json:"time"` // epoch milliseconds
	YesRSVPs    int       `json:"yes_rsvp_count"`
	Venue       restVenue `json:"venue"`
	Group       restGroup `json:"group"`
	Fee         restFee   `json:"fee"`
}

type restVenue struct {
	// Venue id 1 is Meetup's marker for online events.
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type restGroup struct {
	Name    string `json:"name"`
	URLName string `json:"urlname"`
}

type restFee struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// AuthStatus reports the client's credential state.
type AuthStatus struct {
	HasAccessToken    bool `json:"has_access_token"`
	OAuthURLAvailable bool `json:"oauth_url_available"`
}
