package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration constants
const (
	// Backend Configuration
	APIBaseURL  = "API_BASE_URL"
	HTTPTimeout = "HTTP_TIMEOUT"

	// Logging Configuration
	LogLevel  = "LOG_LEVEL"
	LogFormat = "LOG_FORMAT"

	// Enrichment fan-out Configuration
	EnrichMaxWorkers  = "ENRICH_MAX_WORKERS"
	EnrichMaxCapacity = "ENRICH_MAX_CAPACITY"

	EnrichMaxWorkersDefault  = 10
	EnrichMaxCapacityDefault = 100
)

// Config holds all application configuration
type Config struct {
	API        APIConfig
	Logging    LoggingConfig
	Enrichment EnrichmentConfig
}

// APIConfig holds backend connection configuration
type APIConfig struct {
	// BaseURL is the fixed prefix every endpoint path is resolved
	// against.
	BaseURL string

	// Timeout bounds a whole request. Zero means no client-side
	// timeout; cancellation is then entirely up to the caller's
	// context.
	Timeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// EnrichmentConfig bounds the notification enrichment worker pool
type EnrichmentConfig struct {
	MaxWorkers  int
	MaxCapacity int
}

// LoadConfig loads configuration from environment variables and .envrc file
func LoadConfig() (*Config, error) {
	// Set up Viper
	viper.SetConfigName(".envrc")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("../config")

	// Enable environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	setDefaults()

	// Read config file (optional, will use env vars if file doesn't exist)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, but that's okay - we'll use environment variables
	}

	config := &Config{
		API: APIConfig{
			BaseURL: viper.GetString(APIBaseURL),
			Timeout: viper.GetDuration(HTTPTimeout),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString(LogLevel),
			Format: viper.GetString(LogFormat),
		},
		Enrichment: EnrichmentConfig{
			MaxWorkers:  viper.GetInt(EnrichMaxWorkers),
			MaxCapacity: viper.GetInt(EnrichMaxCapacity),
		},
	}

	return config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	// Backend defaults
	viper.SetDefault(APIBaseURL, "https://silent-auction-backend.onrender.com/api")
	viper.SetDefault(HTTPTimeout, time.Duration(0))

	// Logging defaults
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFormat, "json")

	// Enrichment defaults
	viper.SetDefault(EnrichMaxWorkers, EnrichMaxWorkersDefault)
	viper.SetDefault(EnrichMaxCapacity, EnrichMaxCapacityDefault)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.Enrichment.MaxWorkers <= 0 {
		return fmt.Errorf("enrichment worker count must be greater than 0")
	}

	if c.Enrichment.MaxCapacity <= 0 {
		return fmt.Errorf("enrichment queue capacity must be greater than 0")
	}

	return nil
}
