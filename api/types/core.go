package types

// Core data types used across API responses

// Event represents a simplified event with essential fields
type Event struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"` // RFC 3339
	Location    string  `json:"location,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Category    string  `json:"category,omitempty"`
	Source      string  `json:"source"`
	URL         string  `json:"url,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// MapConfig represents map rendering defaults for the frontend
type MapConfig struct {
	DefaultCenter Coordinates `json:"default_center"`
	DefaultZoom   int         `json:"default_zoom"`
	MapStyles     []MapStyle  `json:"map_styles"`
}

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// MapStyle is a selectable base map style
type MapStyle struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// GeocodeResult is a resolved address
type GeocodeResult struct {
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress"`
}
