package middleware

import (
	"github.com/gin-gonic/gin"

	"dayplanner/pkg/response"
)

// userIDKey is the gin context key the identity middleware stores the
// resolved owner id under.
const userIDKey = "dayplanner.userID"

// HeaderUserID carries the caller's identity. The service sits behind a
// gateway that authenticates and injects this header; an absent header
// means an unauthenticated request.
const HeaderUserID = "X-User-ID"

// Auth resolves the owner id for the request. Every domain route runs
// behind it; handlers read the id back with UserID.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the owner id resolved by Auth, or "" when the request
// did not pass through it.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
