package messaging

import (
	"context"
	"fmt"

	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/pkg/correlation"
)

const (
	TypeTransactionCreated = "checkout.transaction_created"
	TypeOutcomeReconciled  = "payment.outcome_reconciled"
)

// EventNotifier publishes checkout and payment events keyed by the
// payment reference, so every event of one purchase lands on the same
// partition.
type EventNotifier struct {
	publisher Publisher
}

func NewEventNotifier(publisher Publisher) *EventNotifier {
	return &EventNotifier{publisher: publisher}
}

func (n *EventNotifier) TransactionCreated(ctx context.Context, event checkout.TransactionCreated) error {
	return n.publish(ctx, event.Reference, TypeTransactionCreated, event)
}

func (n *EventNotifier) OutcomeReconciled(ctx context.Context, outcome payment.Outcome) error {
	key := outcome.Reference
	if key == "" {
		key = outcome.PaymentID
	}
	return n.publish(ctx, key, TypeOutcomeReconciled, outcome)
}

func (n *EventNotifier) publish(ctx context.Context, key, msgType string, payload any) error {
	env, err := NewEnvelope(key, msgType, payload)
	if err != nil {
		return fmt.Errorf("build %s envelope: %w", msgType, err)
	}
	env.CorrelationID = correlation.FromContext(ctx)

	if err := n.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish %s: %w", msgType, err)
	}
	return nil
}
