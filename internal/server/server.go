package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/handlers"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/middleware"
)

type Server struct {
	config     *config.Config
	router     *gin.Engine
	handlers   *handlers.Handlers
	httpServer *http.Server
	logger     *zap.SugaredLogger
}

func NewServer(cfg *config.Config, h *handlers.Handlers, logger *zap.SugaredLogger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
		logger:   logger,
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/live", s.handlers.Live)
	s.router.GET("/version", s.handlers.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/menus", s.handlers.ListMenus)
		v1.GET("/menus/:id", s.handlers.GetMenu)
		v1.POST("/menus", s.handlers.CreateMenu)
		v1.PUT("/menus/:id", s.handlers.UpdateMenu)
		v1.DELETE("/menus/:id", s.handlers.DeleteMenu)
		v1.PUT("/menus/:id/addons", s.handlers.ReplaceMenuAddOns)
		v1.POST("/menus/:id/price", s.handlers.QuoteUnitPrice)

		v1.GET("/cart", s.handlers.GetCart)
		v1.POST("/cart/items", s.handlers.AddCartItem)
		v1.PATCH("/cart/items/:id", s.handlers.UpdateCartItem)
		v1.DELETE("/cart/items/:id", s.handlers.RemoveCartItem)

		v1.POST("/discounts/validate", s.handlers.ValidateDiscountCode)

		v1.POST("/orders/quote", s.handlers.QuoteBreakdown)
		v1.POST("/orders", s.handlers.Checkout)
		v1.GET("/orders", s.handlers.ListOrders)
		v1.GET("/orders/:id", s.handlers.GetOrder)
		v1.PATCH("/orders/:id/status", s.handlers.UpdateOrderStatus)
		v1.POST("/orders/:id/cancel", s.handlers.CancelOrder)
		v1.GET("/orders/:id/invoice", s.handlers.GetOrderInvoice)
	}
}

// Start runs the HTTP server until it fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infow("starting server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
