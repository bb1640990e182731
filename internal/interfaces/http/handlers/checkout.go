// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/checkout"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the simulated checkout endpoint
type CheckoutHandler struct {
	carts    *cart.Manager
	sessions *session.Manager
	service  *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *cart.Manager, sessions *session.Manager, service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		carts:    carts,
		sessions: sessions,
		service:  service,
	}
}

// Checkout handles POST /checkout. The route is mounted behind the login
// gate, so a session user always exists here.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	sessionStore, err := h.sessions.ForSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve session",
		})
		return
	}

	cartStore, err := h.carts.ForSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), sessionStore.Current(), cartStore)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    order,
	})
}
