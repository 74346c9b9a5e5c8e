// Package router initializes the HTTP router (using Echo).
//
// It installs the global error handler and the middleware chain, and maps
// paths to their handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oknozor/conversion-api/internal/handler"
	"github.com/oknozor/conversion-api/internal/middleware"
	"github.com/oknozor/conversion-api/internal/server"
)

// New builds the Echo instance the HTTP server runs.
//
// Middleware order matters: the request id must exist before the tracing
// transaction starts, and the request-scoped logger needs the transaction
// for trace correlation.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())

	if s.Config.Server.RateLimitPerSecond > 0 {
		e.Use(m.RateLimit.Limit())
	}

	registerConversionRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}

// registerConversionRoutes maps the conversion API.
func registerConversionRoutes(e *echo.Echo, h *handler.Handlers) {
	e.POST("/convert", handler.Handle(h.Conversion.Handler, h.Conversion.Convert,
		http.StatusOK, func() *handler.ConvertRequest { return &handler.ConvertRequest{} }))
}
