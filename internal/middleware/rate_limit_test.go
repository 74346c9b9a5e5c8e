package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitDeniesBurst(t *testing.T) {
	t.Parallel()

	srv := testServer(t, 1)
	gm := NewGlobalMiddlewares(srv)
	rl := NewRateLimitMiddleware(srv)

	e := echo.New()
	e.HTTPErrorHandler = gm.GlobalErrorHandler
	e.Use(rl.Limit())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, first.Code, "first request should pass")

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code, "burst above the limit should be denied")

	body := decodeHTTPError(t, second)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Code)
}

func TestRateLimitFractionalRateAllowsFirstRequest(t *testing.T) {
	t.Parallel()

	srv := testServer(t, 0.5)
	gm := NewGlobalMiddlewares(srv)
	rl := NewRateLimitMiddleware(srv)

	e := echo.New()
	e.HTTPErrorHandler = gm.GlobalErrorHandler
	e.Use(rl.Limit())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, first.Code, "a rate below one per second still admits the first request")

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRecordRateLimitHitDisabledTelemetry(t *testing.T) {
	t.Parallel()

	rl := NewRateLimitMiddleware(testServer(t, 1))
	assert.NotPanics(t, func() { rl.RecordRateLimitHit("/convert") })
}
