package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
)

type quoteBreakdownRequest struct {
	DiscountCode string `json:"discount_code"`
}

// QuoteBreakdown handles POST /api/v1/orders/quote. It previews the full
// tax/fee/discount breakdown for the user's current cart without placing
// an order.
func (h *Handlers) QuoteBreakdown(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req quoteBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breakdown, err := h.orderService.QuoteBreakdown(c.Request.Context(), uid, req.DiscountCode)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown":     breakdown,
		"total_display": pricing.FormatKr(breakdown.TotalAmount),
	})
}

// Checkout handles POST /api/v1/orders
func (h *Handlers) Checkout(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), uid, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /api/v1/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	filter := &models.OrderListFilter{UserID: uid}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.OrderStatus(statusStr)
		filter.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorw("failed to list orders", "user_id", uid, "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel
func (h *Handlers) CancelOrder(c *gin.Context) {
	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrderInvoice handles GET /api/v1/orders/:id/invoice. The invoice is
// generated downstream from the order.created event; this fetches it from
// the invoice service once the consumer has attached its id.
func (h *Handlers) GetOrderInvoice(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	if order.InvoiceID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not yet generated"})
		return
	}

	invoice, err := h.invoiceClient.GetInvoice(c.Request.Context(), order.InvoiceID)
	if err != nil {
		h.logger.Errorw("failed to fetch invoice",
			"order_id", order.ID, "invoice_id", order.InvoiceID, "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}
