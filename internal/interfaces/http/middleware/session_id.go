// internal/interfaces/http/middleware/session_id.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the client session identifier
const SessionIDKey = "session_id"

// sessionCookieMaxAge keeps the session cookie for 24 hours
const sessionCookieMaxAge = 86400

// SessionID resolves the client session identifier from the X-Session-ID
// header or the session cookie, creating a fresh one on first contact. The
// identifier keys the durable cart and session entries for this client.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionIDKey); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(SessionIDKey, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}

// GetSessionID returns the session identifier resolved by SessionID
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
