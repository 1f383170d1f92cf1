package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventbook/internal/pkg/jwtutil"
	"eventbook/internal/transport/http/response"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
)

// AuthJWT rejects requests without a valid bearer token and stores the
// token's identity in the gin context for the handlers behind it.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by AuthJWT.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
