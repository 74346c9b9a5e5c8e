package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oknozor/conversion-api/internal/middleware"
	"github.com/oknozor/conversion-api/internal/server"
)

// HealthHandler serves the status endpoint load balancers and uptime
// monitors probe.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports service status. The conversion service holds no
// backing dependencies to probe, so a reachable process is a healthy one
// and the endpoint always answers 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"service":     h.server.Config.Observability.ServiceName,
		"environment": h.server.Config.Primary.Env,
		"timestamp":   time.Now().UTC(),
	}

	logger.Info().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
