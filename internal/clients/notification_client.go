package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/middleware"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/pricing"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/service"
)

// Ensure HTTPNotificationClient implements service.NotificationSender
var _ service.NotificationSender = (*HTTPNotificationClient)(nil)

// HTTPNotificationClient sends transactional email through the external
// notification service. Templating happens on the notification side; this
// client only supplies template data.
type HTTPNotificationClient struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	logger     *zap.SugaredLogger
}

func NewHTTPNotificationClient(cfg config.ServiceConfig, logger *zap.SugaredLogger) *HTTPNotificationClient {
	return &HTTPNotificationClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

type emailRequest struct {
	To       string                 `json:"to"`
	Template string                 `json:"template"`
	Data     map[string]interface{} `json:"data"`
}

// SendOrderConfirmation emails the order confirmation to the checkout
// contact. Monetary values are passed both raw and display-formatted.
func (c *HTTPNotificationClient) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	req := &emailRequest{
		To:       order.ContactEmail,
		Template: "order-confirmation",
		Data: map[string]interface{}{
			"order_id":      order.ID,
			"contact_name":  order.ContactName,
			"delivery_date": order.DeliveryDate,
			"breakdown":     order.Breakdown,
			"total_display": pricing.FormatKr(order.Breakdown.TotalAmount),
		},
	}

	if err := c.post(ctx, "/api/v1/notifications/email", req); err != nil {
		return err
	}

	c.logger.Infow("order confirmation sent",
		"order_id", order.ID,
		"to", order.ContactEmail)
	return nil
}

func (c *HTTPNotificationClient) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	return nil
}

func (c *HTTPNotificationClient) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if requestID, ok := middleware.RequestIDFromContext(ctx); ok {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}
}
