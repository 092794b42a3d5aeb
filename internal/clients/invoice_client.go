package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/apperrors"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/middleware"
)

// Invoice is the invoice generator's view of a generated invoice.
type Invoice struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Number    string    `json:"number"`
	PDFURL    string    `json:"pdf_url"`
	CreatedAt time.Time `json:"created_at"`
}

// HTTPInvoiceClient reads invoices from the external invoice service.
// Generation itself is event-driven (order.created → invoice.generated);
// this client only fetches the result for display.
type HTTPInvoiceClient struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	logger     *zap.SugaredLogger
}

func NewHTTPInvoiceClient(cfg config.ServiceConfig, logger *zap.SugaredLogger) *HTTPInvoiceClient {
	return &HTTPInvoiceClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// GetInvoice fetches an invoice by its identifier.
func (c *HTTPInvoiceClient) GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error) {
	url := fmt.Sprintf("%s/api/v1/invoices/%s", c.baseURL, invoiceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("invoice service request failed", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, apperrors.ErrNotFound
	default:
		return nil, fmt.Errorf("invoice service returned status %d", resp.StatusCode)
	}

	var invoice Invoice
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		return nil, err
	}

	return &invoice, nil
}

func (c *HTTPInvoiceClient) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if requestID, ok := middleware.RequestIDFromContext(ctx); ok {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}
}
