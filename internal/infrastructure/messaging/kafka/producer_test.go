package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/order"
	"github.com/your-org/voice-shop/internal/pkg/logger"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	block  bool
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishOrderCreated(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, logger.Discard())
	p.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	o := order.Order{ID: "o-1", CartID: "c-1", Total: 17820, Currency: "USD", Status: order.StatusProcessing}
	require.NoError(t, p.PublishOrderCreated(context.Background(), o))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, []byte("o-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventOrderCreated, string(msg.Headers[0].Value))

	var event OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, EventOrderCreated, event.Type)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, o.ID, event.Order.ID)
	assert.Equal(t, int64(17820), event.Order.Total)
}

func TestPublishOrderCreatedWriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("no brokers")}
	p := NewProducerWithWriter(w, logger.Discard())

	err := p.PublishOrderCreated(context.Background(), order.Order{ID: "o-1"})
	assert.ErrorContains(t, err, "no brokers")
}

func TestPublishOrderCreatedTimesOut(t *testing.T) {
	w := &fakeWriter{block: true}
	p := NewProducerWithWriter(w, logger.Discard())
	p.timeout = 20 * time.Millisecond

	start := time.Now()
	err := p.PublishOrderCreated(context.Background(), order.Order{ID: "o-1"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewProducerIsAsync(t *testing.T) {
	cfg := &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "orders", WriteTimeout: 500 * time.Millisecond}
	p := NewProducer(cfg, logger.Discard())
	defer p.Close()

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.True(t, w.Async)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, 500*time.Millisecond, p.timeout)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewProducerWithWriter(w, logger.Discard()).Close())
	assert.True(t, w.closed)
}
