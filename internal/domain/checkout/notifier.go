package checkout

import (
	"context"
	"time"
)

//go:generate mockgen -source notifier.go -destination mock_notifier.go -package checkout

// TransactionCreated is emitted once an adapter accepted a payment request,
// before the buyer is handed over to the provider.
type TransactionCreated struct {
	Reference string    `json:"reference"`
	Gateway   string    `json:"gateway"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type Notifier interface {
	TransactionCreated(ctx context.Context, event TransactionCreated) error
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) TransactionCreated(context.Context, TransactionCreated) error { return nil }
