package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGate accepts one API key and one bearer header.
type stubGate struct {
	key    string
	header string
	seen   domain.RequestContext
}

func (g *stubGate) AuthorizeAPIKey(_ context.Context, req domain.RequestContext) error {
	g.seen = req
	if req.APIKey != g.key {
		return errors.New("bad key")
	}
	return nil
}

func (g *stubGate) AuthorizeBearer(_ context.Context, header string) (string, error) {
	if header != g.header {
		return "", errors.New("bad token")
	}
	return "acc-42", nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return r
}

func TestStructuredLoggingMiddleware_SetsRequestIDAndLogger(t *testing.T) {
	r := newEngine()
	var fromCtx *slog.Logger
	r.GET("/x", func(c *gin.Context) {
		fromCtx = middleware.GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	require.NotNil(t, fromCtx)
	assert.NotSame(t, slog.Default(), fromCtx)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}

func TestAPIKeyAuth(t *testing.T) {
	gate := &stubGate{key: "k3y"}
	r := newEngine()
	r.GET("/gated", middleware.APIKeyAuth(gate), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.RemoteAddr = "198.51.100.4:9000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized: Invalid or missing API key"}`, w.Body.String())
	assert.Equal(t, "198.51.100.4", gate.seen.RemoteIP)

	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set(middleware.APIKeyHeader, "k3y")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "k3y", gate.seen.APIKey)
}

func TestAuthMiddleware(t *testing.T) {
	gate := &stubGate{header: "Bearer good"}
	r := newEngine()
	var accountID string
	r.GET("/me", middleware.AuthMiddleware(gate), func(c *gin.Context) {
		accountID, _ = middleware.GetAccountIDFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or missing token"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acc-42", accountID)
}

func TestRateLimit(t *testing.T) {
	l, err := middleware.NewLimiter("1-M", nil)
	require.NoError(t, err)
	r := newEngine()
	r.POST("/login", middleware.RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("five-per-minute", nil)
	assert.Error(t, err)
}
