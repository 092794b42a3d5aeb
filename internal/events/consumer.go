package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/service"
)

// InvoiceEventType represents the type of invoice event.
type InvoiceEventType string

const (
	InvoiceEventGenerated InvoiceEventType = "invoice.generated"
	InvoiceEventFailed    InvoiceEventType = "invoice.failed"
)

// InvoiceEvent is emitted by the downstream invoice generator after it
// processes an order.created event.
type InvoiceEvent struct {
	ID        string           `json:"id"`
	Type      InvoiceEventType `json:"type"`
	InvoiceID string           `json:"invoice_id"`
	OrderID   string           `json:"order_id"`
	Reason    string           `json:"reason,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// KafkaConsumer consumes invoice events and applies them to orders.
type KafkaConsumer struct {
	reader       *kafka.Reader
	orderService *service.OrderService
	logger       *zap.SugaredLogger
	stopCh       chan struct{}
}

// NewKafkaConsumer creates a new Kafka-based invoice event consumer.
func NewKafkaConsumer(cfg config.KafkaConfig, orderService *service.OrderService, logger *zap.SugaredLogger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.InvoicesTopic,
		GroupID:  cfg.ConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	return &KafkaConsumer{
		reader:       reader,
		orderService: orderService,
		logger:       logger,
		stopCh:       make(chan struct{}),
	}
}

// Start begins consuming events. It blocks until the context is cancelled
// or Stop is called.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info("starting invoice event consumer")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stopCh:
			c.logger.Info("invoice event consumer stopped")
			return nil
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Errorw("failed to read message", "error", err)
				continue
			}

			c.handleMessage(ctx, msg)
		}
	}
}

// Stop stops the consumer.
func (c *KafkaConsumer) Stop() {
	close(c.stopCh)
	c.reader.Close()
}

func (c *KafkaConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	var event InvoiceEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Errorw("failed to unmarshal invoice event",
			"topic", msg.Topic, "offset", msg.Offset, "error", err)
		return
	}

	switch event.Type {
	case InvoiceEventGenerated:
		c.handleInvoiceGenerated(ctx, &event)
	case InvoiceEventFailed:
		// The order stays in its current status; invoicing is retried
		// downstream and a later invoice.generated supersedes this.
		c.logger.Warnw("invoice generation failed",
			"order_id", event.OrderID, "reason", event.Reason)
	default:
		c.logger.Debugw("ignoring unknown event type", "type", event.Type)
	}
}

func (c *KafkaConsumer) handleInvoiceGenerated(ctx context.Context, event *InvoiceEvent) {
	c.logger.Infow("handling invoice generated event",
		"invoice_id", event.InvoiceID,
		"order_id", event.OrderID)

	if err := c.orderService.RecordInvoice(ctx, event.OrderID, event.InvoiceID); err != nil {
		c.logger.Errorw("failed to record invoice",
			"order_id", event.OrderID,
			"invoice_id", event.InvoiceID,
			"error", err)
	}
}
