// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// AuthHandler handles the simulated login flow
type AuthHandler struct {
	sessions   *session.Manager
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtManager: auth.NewJWTManager(cfg),
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. Any non-empty credentials succeed; this
// is a demo flow, not a security boundary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store, err := h.sessions.ForSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve session",
		})
		return
	}

	ok, err := store.Login(c.Request.Context(), req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Username and password are required",
		})
		return
	}
	if err != nil {
		// Logged in but the session could not be persisted; the
		// in-memory session is still authoritative
		c.Error(err)
	}

	user := store.Current()

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue access token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":         user,
			"access_token": token,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	store, err := h.sessions.ForSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve session",
		})
		return
	}

	if err := store.Logout(c.Request.Context()); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// Profile handles GET /auth/profile, the token-addressed variant of /me.
// The user is rebuilt from the validated access token claims.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, exists := c.Get("token_claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	tokenClaims := claims.(*auth.Claims)
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data": session.User{
			ID:         tokenClaims.UserID,
			Username:   tokenClaims.Username,
			Email:      tokenClaims.Email,
			IsLoggedIn: true,
		},
	})
}

// Me handles GET /auth/me, returning the current session user
func (h *AuthHandler) Me(c *gin.Context) {
	store, err := h.sessions.ForSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve session",
		})
		return
	}

	user := store.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not logged in",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    user,
	})
}
