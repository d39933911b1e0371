package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Backend     BackendConfig
	Cache       CacheConfig
	Loader      LoaderConfig
	Suggestions SuggestionsConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BackendConfig holds planner backend API configuration. UserID scopes
// cache keys to the session user the auth token belongs to.
type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	AuthToken string        `mapstructure:"auth_token"`
	UserID    string        `mapstructure:"user_id"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds plan cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LoaderConfig holds plan loader configuration
type LoaderConfig struct {
	Debounce            time.Duration `mapstructure:"debounce"`
	RecommendationCount int           `mapstructure:"recommendation_count"`
}

// SuggestionsConfig holds suggestion engine configuration
type SuggestionsConfig struct {
	HorizonDays int `mapstructure:"horizon_days"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/platoplan/")

	// Environment variable settings
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Backend defaults. Empty defaults keep env-only keys visible to
	// Unmarshal.
	v.SetDefault("backend.base_url", "")
	v.SetDefault("backend.auth_token", "")
	v.SetDefault("backend.user_id", "")
	v.SetDefault("backend.timeout", "15s")

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")

	// Loader defaults
	v.SetDefault("loader.debounce", "300ms")
	v.SetDefault("loader.recommendation_count", 10)

	// Suggestion defaults
	v.SetDefault("suggestions.horizon_days", 7)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required (set PLANNER_BACKEND_BASE_URL)")
	}

	if config.Backend.UserID == "" {
		return fmt.Errorf("backend user id is required (set PLANNER_BACKEND_USER_ID)")
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.Loader.Debounce < 0 {
		return fmt.Errorf("loader debounce cannot be negative, got: %s", config.Loader.Debounce)
	}

	return nil
}
