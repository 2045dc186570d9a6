package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     LogConfig
	RateLimit   RateLimitConfig
	Desktop     DesktopConfig
	Preferences PreferencesConfig
	Media       MediaConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string   `envconfig:"PORT" default:"8000"`
	Host        string   `envconfig:"HOST" default:"0.0.0.0"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	Gzip        bool     `envconfig:"GZIP" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// DesktopConfig holds desktop session defaults.
type DesktopConfig struct {
	Width       float64 `envconfig:"DESKTOP_WIDTH" default:"1440"`
	Height      float64 `envconfig:"DESKTOP_HEIGHT" default:"900"`
	DefaultApp  string  `envconfig:"DEFAULT_APP" default:"projects"`
	CatalogDir  string  `envconfig:"CATALOG_DIR" default:""`
	MaxSessions int     `envconfig:"MAX_SESSIONS" default:"1000"`
}

// Viewport returns the configured initial viewport.
func (d DesktopConfig) Viewport() types.Size {
	return types.Size{Width: d.Width, Height: d.Height}
}

// PreferencesConfig holds preference storage configuration.
type PreferencesConfig struct {
	DBPath          string `envconfig:"PREFS_DB_PATH" default:"aadios.db"`
	DefaultDarkMode bool   `envconfig:"DEFAULT_DARK_MODE" default:"false"`
}

// MediaConfig holds media preview configuration.
type MediaConfig struct {
	Dir string `envconfig:"MEDIA_DIR" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks values envconfig cannot check by itself.
func (c *Config) Validate() error {
	if err := utils.ValidateViewport(c.Desktop.Width, c.Desktop.Height); err != nil {
		return fmt.Errorf("invalid desktop size: %w", err)
	}
	if c.Desktop.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS must not be negative, got %d", c.Desktop.MaxSessions)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %d", c.RateLimit.RequestsPerSecond)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			Host:        "0.0.0.0",
			CORSOrigins: []string{"*"},
			Gzip:        true,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Desktop: DesktopConfig{
			Width:       1440,
			Height:      900,
			DefaultApp:  "projects",
			MaxSessions: 1000,
		},
		Preferences: PreferencesConfig{
			DBPath: "aadios.db",
		},
	}
}
