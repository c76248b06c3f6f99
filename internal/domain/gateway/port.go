package gateway

import (
	"context"
	"time"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Adapter starts a payment with one provider. Start never blocks on the
// buyer: it returns the Action the browser has to take next.
type Adapter interface {
	Name() Name
	Start(ctx context.Context, req PaymentRequest) (Action, error)
}

// Verifier looks up a payment server-side by the provider's identifier.
// It returns ErrPaymentNotFound when the provider does not know the id.
type Verifier interface {
	Name() Name
	Verify(ctx context.Context, id string) (Verification, error)
}

// Verification is a provider payment record, already flattened into
// provider-independent fields. RawStatus keeps the provider's vocabulary.
type Verification struct {
	PaymentID       string
	Reference       string
	RawStatus       string
	StatusDetail    string
	Amount          float64
	Currency        string
	PaymentMethod   string
	PayerEmail      string
	MerchantOrderID string
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	Items           []Item
}

type Item struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
