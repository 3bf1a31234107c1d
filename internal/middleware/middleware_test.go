package middleware_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/financial_reports_app/internal/middleware"
	"github.com/SscSPs/financial_reports_app/internal/utils"
)

var tokens = utils.TokenSettings{Secret: "test-secret", Issuer: "fra", Audience: utils.DefaultTokenAudience}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, err := tokens.Issue("user-42", time.Hour)
	require.NoError(t, err)

	required := newRouter(middleware.AuthMiddleware(tokens, true))
	assert.Equal(t, http.StatusUnauthorized, get(required, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(required, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(required, "Bearer not-a-jwt").Code)

	w := get(required, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())

	optional := newRouter(middleware.AuthMiddleware(tokens, false))
	w = get(optional, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, get(optional, "Bearer not-a-jwt").Code)
}

func TestAuthMiddleware_RejectsTokenForAnotherAudience(t *testing.T) {
	other := tokens
	other.Audience = "another-api"
	token, err := other.Issue("user-42", time.Hour)
	require.NoError(t, err)

	w := get(newRouter(middleware.AuthMiddleware(tokens, true)), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token was not issued for this API")
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(middleware.StructuredLoggingMiddleware(logger))

	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), requestID)
	assert.Contains(t, buf.String(), "Request completed")
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(context.Background(), logger)
	assert.Same(t, logger, middleware.GetLoggerFromCtx(ctx))
}

func TestRateLimit(t *testing.T) {
	instance := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})
	r := newRouter(middleware.RateLimit(instance))

	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "").Code)
}
