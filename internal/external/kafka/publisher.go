package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"LuckyStore/internal/messaging"
	"LuckyStore/pkg/correlation"
	"LuckyStore/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Publisher{writer: writer}
}

// Publish writes the envelope as JSON, keyed by env.Key.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.Type)},
		},
	}
	if env.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.HeaderName, Value: []byte(env.CorrelationID)})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(p.writer.Topic, env.Type, "error").Inc()
		slog.ErrorContext(ctx, "failed to publish message",
			"topic", p.writer.Topic, "key", env.Key, "type", env.Type, "error", err)
		return err
	}

	metrics.EventsPublished.WithLabelValues(p.writer.Topic, env.Type, "ok").Inc()
	slog.DebugContext(ctx, "message published",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
