// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, and validates that
// required values are present so the app fails fast on bad or missing config.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes which environment variables belong to this service.
// Nesting uses a double underscore: CONVERSION_SERVER__READ_TIMEOUT maps to
// the koanf key "server.read_timeout", so single underscores stay available
// for multi-word field names.
const envPrefix = "CONVERSION_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because the whole block is optional; when the
// environment provides none of it, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment, used to
// tag logs and traces and to switch environment-dependent defaults.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds. RateLimitPerSecond caps requests per client IP;
// zero disables the limiter.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	RateLimitPerSecond float64  `koanf:"rate_limit_per_second" validate:"min=0"`
}

// Load reads configuration from the environment, unmarshals it into Config,
// applies observability defaults, and validates the result.
//
// It returns errors instead of exiting so callers own the failure policy and
// tests can exercise bad configurations.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		mapped := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".")

		// Environment values are flat strings; the one list-valued key is
		// split into its elements here.
		if mapped == "server.cors_allowed_origins" {
			return mapped, strings.Split(value, ",")
		}

		return mapped, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
	cfg.Observability.setDefaults()

	// Service name and environment are forced so telemetry stays consistent
	// no matter what the environment says.
	cfg.Observability.ServiceName = "conversion-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return cfg, nil
}
