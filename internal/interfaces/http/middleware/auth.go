// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// RequireLogin gates cart mutation and checkout behind the session's login
// state. The cart store itself never checks login; this boundary is the
// only enforcement point, so every mutating route must carry it.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := sessions.ForSession(c.Request.Context(), GetSessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve session",
			})
			c.Abort()
			return
		}

		if !store.IsLoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Login required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// JWTAuth validates a bearer access token and stores its claims in the
// context. Used by routes addressed with a token instead of a session.
func JWTAuth(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_email", claims.Email)
		c.Set("token_claims", claims)

		c.Next()
	}
}
