package middleware

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/oknozor/conversion-api/internal/config"
	"github.com/oknozor/conversion-api/internal/logger"
	"github.com/oknozor/conversion-api/internal/server"
)

// testServer builds an application container good enough for middleware
// tests: telemetry off, logs discarded.
func testServer(t *testing.T, rateLimitPerSecond float64) *server.Server {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
			RateLimitPerSecond: rateLimitPerSecond,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Environment = "test"

	log := zerolog.Nop()
	return server.New(cfg, &log, &logger.LoggerService{})
}
