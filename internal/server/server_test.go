package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdbstn/fashionking/internal/config"
	"github.com/comdbstn/fashionking/pkg/logger"
)

func newTestEcho(t *testing.T, access *bytes.Buffer) *echo.Echo {
	t.Helper()
	return NewEcho(EchoParams{
		Config:     &config.Config{},
		Log:        slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		HTTPLogger: logger.NewHTTPLoggerWriter(access),
	})
}

func TestNewEcho_RequestIDAndAccessLog(t *testing.T) {
	var access bytes.Buffer
	e := newTestEcho(t, &access)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Contains(t, access.String(), "GET /ping 200")
}

func TestNewEcho_HealthIsQuiet(t *testing.T) {
	var access bytes.Buffer
	e := newTestEcho(t, &access)
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, access.String())
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	var access bytes.Buffer
	e := newTestEcho(t, &access)
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal_error"`)
}

func TestNewEcho_TrailingSlashRemoved(t *testing.T) {
	var access bytes.Buffer
	e := newTestEcho(t, &access)
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "pong"))
}
