package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type validateDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidateDiscountCode handles POST /api/v1/discounts/validate. Validation
// is read-only: rejecting a code never changes anything the user has built
// up so far.
func (h *Handlers) ValidateDiscountCode(c *gin.Context) {
	var req validateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dc, err := h.discountService.ValidateCode(c.Request.Context(), req.Code)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       dc.Code,
		"percentage": dc.Percentage,
		"applies_to": dc.AppliesTo,
		"valid":      true,
	})
}
