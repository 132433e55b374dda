package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Local .env overrides nothing that is already exported
		_ = godotenv.Load()

		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("EVENTSCOUT")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		// Database is optional for the MCP-only commands
		fmt.Println("Warning: No database path configured")
	}

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct invalid query cap
	if viper.GetInt("query.max_results") <= 0 {
		viper.Set("query.max_results", 20)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_TOKEN_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
	}

	for _, key := range []string{"scrapers.eventbrite.api_key", "meetup.access_token", "anthropic.api_key"} {
		value := viper.GetString(key)
		for _, placeholder := range placeholders {
			if value == placeholder {
				if isProduction {
					return fmt.Errorf("invalid %s: cannot use placeholder values in production", key)
				}
				fmt.Printf("Warning: %s is using a placeholder value\n", key)
				break
			}
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)

	// Database defaults
	viper.SetDefault("database.path", "./data/events.db")
	viper.SetDefault("database.log_queries", false)

	// Query extraction defaults
	viper.SetDefault("query.max_results", 20)

	// Scraper defaults
	viper.SetDefault("scrapers.default_location", "San Francisco, CA")
	viper.SetDefault("scrapers.max_events_per_source", 100)
	viper.SetDefault("scrapers.timeout", 30*time.Second)
	viper.SetDefault("scrapers.eventbrite.base_url", "https://www.eventbriteapi.com/v3")

	// Meetup API defaults
	viper.SetDefault("meetup.base_url", "https://api.meetup.com")
	viper.SetDefault("meetup.oauth_url", "https://secure.meetup.com/oauth2")
	viper.SetDefault("meetup.redirect_uri", "http://localhost:8080/")
	viper.SetDefault("meetup.timeout", 30*time.Second)

	// Anthropic defaults
	viper.SetDefault("anthropic.model", "claude-3-5-sonnet-latest")

	// Map defaults (San Francisco)
	viper.SetDefault("maps.default_latitude", 37.7749)
	viper.SetDefault("maps.default_longitude", -122.4194)
	viper.SetDefault("maps.default_zoom", 12)
}
