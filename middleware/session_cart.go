package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCartCookie = "sessionCartId"
	SessionCartHeader = "X-Session-Cart-Id"
	SessionCartKey    = "session_cart_id"

	sessionCartMaxAge = 30 * 24 * 60 * 60
)

// SessionCartMiddleware guarantees every request carries an anonymous cart id.
// Clients may send it as a cookie or header; first-time visitors get a fresh
// uuid set as a cookie.
func SessionCartMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCartID := c.GetHeader(SessionCartHeader)
		if sessionCartID == "" {
			sessionCartID, _ = c.Cookie(SessionCartCookie)
		}

		if sessionCartID == "" {
			sessionCartID = uuid.NewString()
			c.SetCookie(SessionCartCookie, sessionCartID, sessionCartMaxAge, "/", "", false, true)
		}

		c.Set(SessionCartKey, sessionCartID)
		c.Next()
	}
}
