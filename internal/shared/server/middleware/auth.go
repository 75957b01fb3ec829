package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviewlens-backend/internal/shared/server/respond"
)

// Auth enforces the static bearer API token. An empty configured token
// disables the check, which is the dev default.
func Auth(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if apiToken == "" {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization header", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token", nil)
			return
		}

		c.Next()
	}
}
