package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/internal/messaging"
	"LuckyStore/pkg/correlation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published []messaging.Envelope
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, env messaging.Envelope) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, env)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestEventNotifier_TransactionCreated(t *testing.T) {
	pub := &recordingPublisher{}
	n := messaging.NewEventNotifier(pub)
	ctx := correlation.WithID(context.Background(), "corr-1")

	err := n.TransactionCreated(ctx, checkout.TransactionCreated{
		Reference: "NUMERO-1-abc",
		Gateway:   "wompi",
		Quantity:  4,
		Amount:    6400,
		CreatedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	env := pub.published[0]
	assert.Equal(t, "NUMERO-1-abc", env.Key)
	assert.Equal(t, messaging.TypeTransactionCreated, env.Type)
	assert.Equal(t, "corr-1", env.CorrelationID)
	assert.NotEmpty(t, env.EventID)

	var payload checkout.TransactionCreated
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, 4, payload.Quantity)
}

func TestEventNotifier_OutcomeReconciled(t *testing.T) {
	t.Run("should key by payment id without a reference", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := messaging.NewEventNotifier(pub)

		err := n.OutcomeReconciled(context.Background(), payment.Outcome{
			Gateway:   gateway.MercadoPago,
			Status:    gateway.StatusApproved,
			PaymentID: "123",
		})

		require.NoError(t, err)
		require.Len(t, pub.published, 1)
		assert.Equal(t, "123", pub.published[0].Key)
		assert.Equal(t, messaging.TypeOutcomeReconciled, pub.published[0].Type)
	})

	t.Run("should wrap publisher errors", func(t *testing.T) {
		boom := errors.New("broker down")
		n := messaging.NewEventNotifier(&recordingPublisher{err: boom})

		err := n.OutcomeReconciled(context.Background(), payment.Outcome{Reference: "R"})

		assert.ErrorIs(t, err, boom)
	})
}
