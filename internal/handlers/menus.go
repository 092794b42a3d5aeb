package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
)

// ListMenus handles GET /api/v1/menus
func (h *Handlers) ListMenus(c *gin.Context) {
	menus, err := h.menuService.ListMenus(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list menus", "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menus": menus,
		"count": len(menus),
	})
}

// GetMenu handles GET /api/v1/menus/:id
func (h *Handlers) GetMenu(c *gin.Context) {
	menu, err := h.menuService.GetMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// CreateMenu handles POST /api/v1/menus
func (h *Handlers) CreateMenu(c *gin.Context) {
	var req models.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	menu, err := h.menuService.CreateMenu(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// UpdateMenu handles PUT /api/v1/menus/:id
func (h *Handlers) UpdateMenu(c *gin.Context) {
	var req models.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	menu, err := h.menuService.UpdateMenu(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// DeleteMenu handles DELETE /api/v1/menus/:id
func (h *Handlers) DeleteMenu(c *gin.Context) {
	if err := h.menuService.DeleteMenu(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReplaceMenuAddOns handles PUT /api/v1/menus/:id/addons
func (h *Handlers) ReplaceMenuAddOns(c *gin.Context) {
	var req models.ReplaceAddOnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	menu, err := h.menuService.ReplaceAddOns(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

type quoteUnitPriceRequest struct {
	SelectedAddOnIDs []string `json:"selected_add_on_ids"`
}

// QuoteUnitPrice handles POST /api/v1/menus/:id/price. It returns the
// per-unit price of a customized selection without touching the cart, so
// clients can reprice live while the user toggles add-ons.
func (h *Handlers) QuoteUnitPrice(c *gin.Context) {
	var req quoteUnitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	unitPrice, err := h.menuService.QuoteUnitPrice(c.Request.Context(), c.Param("id"), req.SelectedAddOnIDs)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu_id":             c.Param("id"),
		"selected_add_on_ids": req.SelectedAddOnIDs,
		"unit_price":          unitPrice,
		"unit_price_display":  pricing.FormatKr(unitPrice),
	})
}
