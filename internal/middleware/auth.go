package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/auth"
)

const ContextKeyUserID = "user_id"

// Identity decides which user a request acts as.
//
// With an empty secret there is exactly one caller: every request runs
// as fixedUserID. With a secret, a "Bearer <jwt>" header is required and
// the token's user id is the caller; requests without a valid token are
// rejected with 401 before any handler runs.
func Identity(fixedUserID int64, secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			c.Set(ContextKeyUserID, fixedUserID)
			c.Next()
		}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization format, expected: Bearer <token>",
			})
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the caller set by Identity, or 0 if none was set.
// No user has id 0, so a missing caller fails every lookup.
func GetUserID(c *gin.Context) int64 {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}
	id, ok := val.(int64)
	if !ok {
		return 0
	}
	return id
}
