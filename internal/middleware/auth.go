package middleware

import (
	"net/http"
	"strings"

	"github.com/Sumit10612/wealth-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// Auth gates protected routes behind the single shared secret. The
// bearer token is the configured password itself; there are no
// sessions and no expiry. Comparison is plain string equality, which
// is the extent of the security model here.
func Auth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		if token == "" || token != password {
			util.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
