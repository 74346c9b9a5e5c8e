package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/oknozor/conversion-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server, so
// router setup receives one wired object instead of many.
type Middlewares struct {
	// Global holds middleware applied across the whole API: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic transaction middleware and attribute
	// enrichment.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client request rate and records limiter
	// telemetry.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container. The New Relic application is taken from the server's
// LoggerService; when telemetry is disabled it is nil and the tracing
// middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
