package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

// GetCart handles GET /api/v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), uid)
	if err != nil {
		h.logger.Errorw("failed to get cart", "user_id", uid, "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddCartItem handles POST /api/v1/cart/items
func (h *Handlers) AddCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), uid, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:id
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Request.Context(), uid, c.Param("id"), req.Quantity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), uid, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
