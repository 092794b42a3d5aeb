package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/clients"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/middleware"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/service"
)

// Handlers holds all HTTP handlers for the catering orders service.
type Handlers struct {
	menuService     *service.MenuService
	cartService     *service.CartService
	discountService *service.DiscountService
	orderService    *service.OrderService
	invoiceClient   *clients.HTTPInvoiceClient
	config          *config.Config
	logger          *zap.SugaredLogger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	menuService *service.MenuService,
	cartService *service.CartService,
	discountService *service.DiscountService,
	orderService *service.OrderService,
	invoiceClient *clients.HTTPInvoiceClient,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *Handlers {
	return &Handlers{
		menuService:     menuService,
		cartService:     cartService,
		discountService: discountService,
		orderService:    orderService,
		invoiceClient:   invoiceClient,
		config:          cfg,
		logger:          logger,
	}
}

// userID extracts the authenticated user id set by the identity-aware
// proxy. Authentication itself is handled upstream.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader(middleware.HeaderUserID)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return "", false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	if err == apperrors.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if validationErr, ok := err.(*apperrors.ValidationError); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
