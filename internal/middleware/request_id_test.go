package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(c))
	require.NotEmpty(t, seen)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated request id should be a UUID")
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader), "id should be echoed on the response")
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "upstream-id-42", GetRequestID(c))
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "upstream-id-42", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}
