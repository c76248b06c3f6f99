//go:build integration
// +build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/external/kafka"
	"LuckyStore/internal/messaging"
	"LuckyStore/internal/testinfra"
	"LuckyStore/pkg/correlation"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_TransactionCreated(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	k, err := testinfra.NewKafka(ctx)
	require.NoError(t, err)
	defer k.Cleanup(context.Background())

	publisher := kafka.NewPublisher(k.Brokers, k.CheckoutTopic)
	defer publisher.Close()

	notifier := messaging.NewEventNotifier(publisher)
	err = notifier.TransactionCreated(correlation.WithID(ctx, "corr-42"), checkout.TransactionCreated{
		Reference: "NUMERO-1-abc",
		Gateway:   "epayco",
		Quantity:  10,
		Amount:    16000,
		Currency:  "COP",
	})
	require.NoError(t, err)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  k.Brokers,
		Topic:    k.CheckoutTopic,
		GroupID:  "test-" + k.CheckoutTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	assert.Equal(t, "NUMERO-1-abc", string(msg.Key))
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, messaging.TypeTransactionCreated, headers["event_type"])
	assert.Equal(t, "corr-42", headers[correlation.HeaderName])

	var env messaging.Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, messaging.TypeTransactionCreated, env.Type)
	assert.JSONEq(t, `{
		"reference": "NUMERO-1-abc",
		"gateway": "epayco",
		"product_id": "",
		"quantity": 10,
		"amount": 16000,
		"currency": "COP",
		"created_at": "0001-01-01T00:00:00Z"
	}`, string(env.Payload))
}
