package types

// Status constants for API responses
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusPending = "pending"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// EventsResponse for event lists
type EventsResponse struct {
	BaseResponse
	Events []Event `json:"events"`
	Count  int     `json:"count"`
}

// SingleEventResponse for getting a single event
type SingleEventResponse struct {
	BaseResponse
	Event *Event `json:"event"`
}

// CategoriesResponse for category lists
type CategoriesResponse struct {
	BaseResponse
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

// ScrapeResponse for scrape trigger requests
type ScrapeResponse struct {
	BaseResponse
	JobID string `json:"jobId"`
}

// GeocodeResponse for geocoding results
type GeocodeResponse struct {
	BaseResponse
	Result *GeocodeResult `json:"result"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
