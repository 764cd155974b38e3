package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the health gateway.
// Environment variables are parsed from the HEALTH_GATEWAY_ prefix.
type Config struct {
	// Build target selects the deployment shape: local (sqlite) or cloud (postgres)
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/gateway.db"`

	// Upstream provider
	ProviderBaseURL        string `envconfig:"PROVIDER_BASE_URL" default:"https://api.healthprovider.example"`
	ProviderAPIKey         string `envconfig:"PROVIDER_API_KEY" default:""`
	ProviderTimeoutSeconds int    `envconfig:"PROVIDER_TIMEOUT_SECONDS" default:"15"`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to
// "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"sqlite": true, "postgres": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required when DB_DRIVER is postgres")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Variables are prefixed with HEALTH_GATEWAY_, for example
// HEALTH_GATEWAY_HTTP_PORT or HEALTH_GATEWAY_PROVIDER_API_KEY.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("HEALTH_GATEWAY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("provider_base_url", cfg.ProviderBaseURL).
		Bool("provider_api_key_present", cfg.ProviderAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		BuildTarget:               "local",
		DBDriver:                  "sqlite",
		Environment:               EnvTesting,
		HTTPPort:                  8080,
		SQLitePath:                "./data/gateway-test.db",
		ProviderBaseURL:           "http://localhost:9123",
		ProviderTimeoutSeconds:    2,
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
