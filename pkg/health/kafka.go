package health

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker is up when at least one broker accepts a connection.
type KafkaChecker struct {
	brokers []string
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers}
}

func (c *KafkaChecker) Name() string { return "kafka" }

func (c *KafkaChecker) Check(ctx context.Context) Result {
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			return Up()
		}
	}
	return Down(errors.New("all brokers unreachable"))
}
