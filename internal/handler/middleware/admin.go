package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminTokenHeader = "X-Admin-Token"

var (
	errAdminDisabled = errors.New("admin api token not configured")
	errAdminToken    = errors.New("admin token mismatch")
)

type AdminMiddleware struct {
	token []byte
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	if cfg.Token == "" {
		slog.Warn("ADMIN_API_TOKEN is empty; admin routes are disabled")
	}
	return &AdminMiddleware{token: []byte(cfg.Token)}
}

// RequireAdmin rejects requests whose X-Admin-Token does not match the
// configured token. With no token configured every request gets 503.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.token) == 0 {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errAdminDisabled, "Admin API disabled", nil)
			return
		}
		got := []byte(c.GetHeader(AdminTokenHeader))
		if subtle.ConstantTimeCompare(got, m.token) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminToken, "Unauthorized", nil)
			return
		}
		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

const ctxAdminKey = "is_admin"

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}
