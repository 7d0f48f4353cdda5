//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.NewAdminMiddleware(config.AdminConfig{Token: token})
	r.GET("/admin/ping", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": middleware.IsAdmin(c)})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	r := newAdminRouter("s3cret")

	t.Run("accepts matching token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/ping", nil, "s3cret")
		var body map[string]bool
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body["admin"])
	})

	t.Run("rejects missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/ping", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/ping", nil, "s3cret-but-longer")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func TestRequireAdminDisabled(t *testing.T) {
	r := newAdminRouter("")

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/ping", nil, "anything")
	httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Admin API disabled")
}

func TestLoggingMiddlewareEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "req-123"})
	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "req-123", body["request_id"])
	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
