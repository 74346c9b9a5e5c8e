package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oknozor/conversion-api/internal/handler"
)

// registerSystemRoutes registers endpoints that sit outside the conversion
// API: health status, the docs UI, and the static assets the docs UI loads.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)

	// openapi.json and openapi.html live here.
	e.Static("/static", "static")

	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
