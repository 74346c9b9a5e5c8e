package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/oknozor/conversion-api/internal/config"
	"github.com/oknozor/conversion-api/internal/errs"
	"github.com/oknozor/conversion-api/internal/logger"
	"github.com/oknozor/conversion-api/internal/middleware"
	"github.com/oknozor/conversion-api/internal/server"
	"github.com/oknozor/conversion-api/internal/service"
)

// newTestAPI wires handlers into an Echo instance with the real global error
// handler, mirroring the production route registration without the tracing
// and logging middleware.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Observability: config.DefaultObservabilityConfig(),
	}
	log := zerolog.Nop()
	srv := server.New(cfg, &log, &logger.LoggerService{})

	services := service.NewServices(srv)
	handlers := NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler
	e.POST("/convert", Handle(handlers.Conversion.Handler, handlers.Conversion.Convert,
		http.StatusOK, func() *ConvertRequest { return &ConvertRequest{} }))
	e.GET("/status", handlers.Health.CheckHealth)
	e.GET("/docs", handlers.OpenAPI.ServeOpenAPIUI)

	return e
}

func postConvert(t *testing.T, e *echo.Echo, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) float64 {
	t.Helper()

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Result
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))

	return httpErr
}
