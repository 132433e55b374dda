package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Query       QueryConfig     `mapstructure:"query"`
	Scrapers    ScrapersConfig  `mapstructure:"scrapers"`
	Meetup      MeetupConfig    `mapstructure:"meetup"`
	Anthropic   AnthropicConfig `mapstructure:"anthropic"`
	Maps        MapsConfig      `mapstructure:"maps"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// QueryConfig contains natural-language query settings
type QueryConfig struct {
	MaxResults int `mapstructure:"max_results"`
}

// ScrapersConfig contains event scraper settings
type ScrapersConfig struct {
	DefaultLocation    string        `mapstructure:"default_location"`
	MaxEventsPerSource int           `mapstructure:"max_events_per_source"`
	Timeout            time.Duration `mapstructure:"timeout"`
	Eventbrite         APIConfig     `mapstructure:"eventbrite"`
}

// APIConfig contains credentials and endpoint for an external API
type APIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// MeetupConfig contains Meetup API settings
type MeetupConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	AccessToken  string        `mapstructure:"access_token"`
	RedirectURI  string        `mapstructure:"redirect_uri"`
	BaseURL      string        `mapstructure:"base_url"`
	OAuthURL     string        `mapstructure:"oauth_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// AnthropicConfig contains settings for the recommendation model
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// MapsConfig contains map rendering defaults
type MapsConfig struct {
	DefaultLatitude  float64 `mapstructure:"default_latitude"`
	DefaultLongitude float64 `mapstructure:"default_longitude"`
	DefaultZoom      int     `mapstructure:"default_zoom"`
}
