package types

// SearchEventsRequest represents event search query parameters
type SearchEventsRequest struct {
	Term     string `form:"term" example:"python"`
	Category string `form:"category" example:"technology"`
	DateFrom string `form:"date_from" example:"2025-09-15"` // YYYY-MM-DD
	Location string `form:"location" example:"San Francisco"`
	Limit    int    `form:"limit" example:"50"`
}

// ScrapeRequest represents a scrape trigger request
type ScrapeRequest struct {
	Location string `json:"location,omitempty" example:"San Francisco, CA"`
	Category string `json:"category,omitempty" example:"technology"`
}

// GeocodeRequest represents a geocoding request
type GeocodeRequest struct {
	Address string `form:"address" binding:"required" example:"123 Market St"`
}
