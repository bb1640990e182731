// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints. Mutating routes are mounted behind
// the login gate; the handler itself never checks login state.
type CartHandler struct {
	carts   *cart.Manager
	catalog catalog.Catalog
	logger  *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, cat catalog.Catalog, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
		logger:  logger,
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// UpdateItemRequest represents update cart item request
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	h.respondCart(c, store, "Cart retrieved successfully")
}

// AddItem handles POST /cart/items. The product is resolved through the
// catalog so the cart always holds a full product snapshot.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.AddItem(c.Request.Context(), product); err != nil {
		h.logger.WithError(err).Warn("Cart persistence failed")
	}

	h.respondCart(c, store, "Item added to cart successfully")
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		h.logger.WithError(err).Warn("Cart persistence failed")
	}

	h.respondCart(c, store, "Cart item updated successfully")
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), productID); err != nil {
		h.logger.WithError(err).Warn("Cart persistence failed")
	}

	h.respondCart(c, store, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.Clear(c.Request.Context()); err != nil {
		h.logger.WithError(err).Warn("Cart persistence failed")
	}

	h.respondCart(c, store, "Cart cleared successfully")
}

func (h *CartHandler) store(c *gin.Context) (*cart.Store, bool) {
	store, err := h.carts.ForSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return nil, false
	}
	return store, true
}

func (h *CartHandler) respondCart(c *gin.Context, store *cart.Store, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"items":  store.Items(),
			"totals": store.Totals(),
		},
	})
}
