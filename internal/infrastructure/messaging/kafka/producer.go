// internal/infrastructure/messaging/kafka/producer.go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/order"
)

// EventOrderCreated is the type of the event written after checkout
const EventOrderCreated = "order.created"

// DefaultPublishTimeout caps how long a publish may hold up its caller
const DefaultPublishTimeout = 2 * time.Second

// OrderEvent is the JSON payload written to the order topic
type OrderEvent struct {
	EventID   string      `json:"eventId"`
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Order     order.Order `json:"order"`
}

// MessageWriter is the subset of kafka.Writer the producer needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes order events keyed by order id
type Producer struct {
	writer  MessageWriter
	logger  logrus.FieldLogger
	now     func() time.Time
	timeout time.Duration
}

// NewProducer creates a producer for the configured brokers and topic.
// Writes are asynchronous; delivery failures are logged from the completion
// callback instead of blocking checkout.
func NewProducer(cfg *config.KafkaConfig, logger logrus.FieldLogger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, m := range msgs {
				logger.WithError(err).WithField("order_id", string(m.Key)).Error("order event delivery failed")
			}
		},
	}

	p := NewProducerWithWriter(writer, logger)
	if cfg.WriteTimeout > 0 && cfg.WriteTimeout < p.timeout {
		p.timeout = cfg.WriteTimeout
	}
	return p
}

// NewProducerWithWriter creates a producer around an existing writer
func NewProducerWithWriter(writer MessageWriter, logger logrus.FieldLogger) *Producer {
	return &Producer{
		writer:  writer,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		timeout: DefaultPublishTimeout,
	}
}

// PublishOrderCreated writes an order.created event
func (p *Producer) PublishOrderCreated(ctx context.Context, o order.Order) error {
	value, err := json.Marshal(OrderEvent{
		EventID:   uuid.NewString(),
		Type:      EventOrderCreated,
		Timestamp: p.now(),
		Order:     o,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventOrderCreated)},
		},
	})
	if err != nil {
		return fmt.Errorf("write order event: %w", err)
	}

	p.logger.WithField("order_id", o.ID).Debug("order created event published")
	return nil
}

// Close flushes and closes the writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
