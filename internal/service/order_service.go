package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/metrics"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/repository"
)

// OrderEventPublisher publishes order lifecycle events. The invoice
// generator and the transactional email sender consume them downstream.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishOrderStatusChanged(ctx context.Context, order *models.Order, previousStatus models.OrderStatus) error
	PublishOrderCancelled(ctx context.Context, order *models.Order, reason string) error
}

// NotificationSender delivers transactional email through the external
// notification service.
type NotificationSender interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

// OrderService handles checkout and order lifecycle.
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	discounts *DiscountService
	publisher OrderEventPublisher
	notifier  NotificationSender
	config    *config.Config
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	discounts *DiscountService,
	publisher OrderEventPublisher,
	notifier NotificationSender,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		discounts: discounts,
		publisher: publisher,
		notifier:  notifier,
		config:    cfg,
		logger:    logger,
	}
}

// QuoteBreakdown previews the full cost breakdown for the user's current
// cart plus an optional discount code, without placing an order.
func (s *OrderService) QuoteBreakdown(ctx context.Context, userID, discountCode string) (*models.OrderTaxBreakdown, error) {
	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := cartSubtotal(items)

	discountInfo, _, err := s.resolveDiscounts(ctx, userID, discountCode)
	if err != nil {
		return nil, err
	}

	_, companyPct, err := s.discounts.CompanyDiscountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ValidateBreakdownInputs(subtotal, discountInfo, companyPct); err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeOrderBreakdown(subtotal, discountInfo, companyPct)
	return &breakdown, nil
}

// Checkout materializes the user's cart into an immutable order. The tax
// breakdown is computed exactly once, before persistence; a failed or
// retried persistence call never re-invokes the calculator.
func (s *OrderService) Checkout(ctx context.Context, userID string, req *models.CheckoutRequest) (*models.Order, error) {
	if err := ValidateCheckoutRequest(req); err != nil {
		metrics.CheckoutFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	items, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		metrics.CheckoutFailures.WithLabelValues("empty_cart").Inc()
		return nil, apperrors.NewValidationError("cart", "cart is empty")
	}

	subtotal := cartSubtotal(items)

	discountInfo, appliedCode, err := s.resolveDiscounts(ctx, userID, req.DiscountCode)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("discount_code").Inc()
		return nil, err
	}

	companyID, companyPct, err := s.discounts.CompanyDiscountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ValidateBreakdownInputs(subtotal, discountInfo, companyPct); err != nil {
		metrics.CheckoutFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	breakdown := pricing.ComputeOrderBreakdown(subtotal, discountInfo, companyPct)

	now := time.Now()
	order := &models.Order{
		ID:              "ord_" + uuid.NewString(),
		UserID:          userID,
		CompanyID:       companyID,
		Status:          models.OrderStatusPending,
		Items:           orderLineItems(items),
		Breakdown:       breakdown,
		DiscountCode:    appliedCode,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		// The order exists; a stale cart is an annoyance, not a failure.
		s.logger.Warnw("failed to clear cart after checkout", "user_id", userID, "error", err)
	}

	metrics.OrdersCreated.Inc()

	if s.config.Features.EnableOrderEvents {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			s.logger.Errorw("failed to publish order created event",
				"order_id", order.ID, "error", err)
		}
	}

	if s.config.Features.EnableEmailReceipts {
		go s.sendConfirmation(order)
	}

	s.logger.Infow("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.Breakdown.TotalAmount,
		"total_display", pricing.FormatKr(order.Breakdown.TotalAmount))

	return order, nil
}

// resolveDiscounts validates an optionally entered code. An empty code
// means no code; an invalid one is rejected so the caller's previous state
// stays untouched.
func (s *OrderService) resolveDiscounts(ctx context.Context, userID, code string) (*models.DiscountDescriptor, string, error) {
	if code == "" {
		return nil, "", nil
	}

	dc, err := s.discounts.ValidateCode(ctx, code)
	if err != nil {
		return nil, "", err
	}

	descriptor := dc.Descriptor()
	return &descriptor, dc.Code, nil
}

func cartSubtotal(items []*models.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func orderLineItems(items []*models.CartItem) []models.OrderLineItem {
	lines := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderLineItem{
			MenuID:           item.MenuID,
			MenuName:         item.MenuName,
			Quantity:         item.Quantity,
			SelectedAddOnIDs: item.SelectedAddOnIDs,
			UnitPrice:        item.UnitPrice,
			LineTotal:        item.LineTotal(),
		})
	}
	return lines
}

func (s *OrderService) sendConfirmation(order *models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
		s.logger.Errorw("failed to send order confirmation",
			"order_id", order.ID, "error", err)
	}
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOrders lists orders for the given filter.
func (s *OrderService) ListOrders(ctx context.Context, filter *models.OrderListFilter) ([]*models.Order, int, error) {
	if err := ValidateOrderListFilter(filter); err != nil {
		return nil, 0, err
	}
	return s.orderRepo.List(ctx, filter)
}

// UpdateOrderStatus moves an order to a new status and publishes the change.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	if err := ValidateUpdateOrderStatusRequest(req); err != nil {
		return nil, err
	}

	previous, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableOrderEvents {
		if err := s.publisher.PublishOrderStatusChanged(ctx, order, previous.Status); err != nil {
			s.logger.Errorw("failed to publish status change",
				"order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// CancelOrder cancels an order with a reason.
func (s *OrderService) CancelOrder(ctx context.Context, id, reason string) (*models.Order, error) {
	if err := ValidateCancellationReason(reason); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, &models.UpdateOrderStatusRequest{
		Status: models.OrderStatusCancelled,
		Notes:  reason,
	})
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableOrderEvents {
		if err := s.publisher.PublishOrderCancelled(ctx, order, reason); err != nil {
			s.logger.Errorw("failed to publish cancellation",
				"order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// RecordInvoice attaches a downstream-generated invoice to an order and
// marks it invoiced. Called from the invoice event consumer.
func (s *OrderService) RecordInvoice(ctx context.Context, orderID, invoiceID string) error {
	if err := s.orderRepo.SetInvoiceID(ctx, orderID, invoiceID); err != nil {
		return err
	}

	_, err := s.UpdateOrderStatus(ctx, orderID, &models.UpdateOrderStatusRequest{
		Status: models.OrderStatusInvoiced,
	})
	return err
}
