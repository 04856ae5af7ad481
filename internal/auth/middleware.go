package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "auth.userID"

// Middleware validates the caller's bearer token and injects the user id
// into the request context for downstream handlers.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		userID, err := m.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	// Legacy clients send the token bare in x-auth-token.
	return strings.TrimSpace(c.GetHeader("x-auth-token"))
}

// UserID returns the authenticated caller's id. Zero means the middleware
// did not run on this route.
func UserID(c *gin.Context) int64 {
	value, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	userID, _ := value.(int64)
	return userID
}
