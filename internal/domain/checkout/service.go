package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/product"
	"LuckyStore/pkg/metrics"
)

// References issues merchant references.
type References interface {
	New() string
}

// ReferenceFunc adapts a plain function to References.
type ReferenceFunc func() string

func (f ReferenceFunc) New() string { return f() }

type Options struct {
	StockCheck bool
	// BaseURL is the public origin the provider sends buyers and
	// callbacks back to.
	BaseURL string
}

const (
	ResultPath       = "/payment-result"
	ConfirmationPath = "/api/payment-confirmation"
)

// Payment is a started payment: the request sent to the adapter and what
// the browser must do next.
type Payment struct {
	Reference string
	Request   gateway.PaymentRequest
	Action    gateway.Action
}

// TransactionNotice is shown to the buyer once a payment is started.
func (p Payment) TransactionNotice() string {
	return "Transacción iniciada con referencia: " + p.Reference
}

type Service struct {
	products   product.Source
	adapter    gateway.Adapter
	references References
	notifier   Notifier
	opts       Options
	now        func() time.Time
}

func NewService(products product.Source, adapter gateway.Adapter, refs References, notifier Notifier, opts Options) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Service{
		products:   products,
		adapter:    adapter,
		references: refs,
		notifier:   notifier,
		opts:       opts,
		now:        time.Now,
	}
}

func (s *Service) Gateway() gateway.Name { return s.adapter.Name() }

// Pay starts a payment for the session. The billing form must have been
// filled and be valid; when stock checks are on, the product source must
// confirm the quantity is still available.
func (s *Service) Pay(ctx context.Context, sess *Session) (Payment, error) {
	payment, err := s.pay(ctx, sess)
	metrics.CheckoutAttempts.WithLabelValues(string(s.adapter.Name()), attemptResult(err)).Inc()
	return payment, err
}

func (s *Service) pay(ctx context.Context, sess *Session) (Payment, error) {
	values, ok := sess.Values()
	if !ok {
		return Payment{}, ErrFormMissing
	}
	if !sess.Valid() {
		return Payment{}, ErrFormInvalid
	}

	qty := sess.Selection.Quantity
	if s.opts.StockCheck {
		available, err := s.products.CheckStock(ctx, qty)
		if err != nil {
			return Payment{}, fmt.Errorf("check stock: %w", err)
		}
		if !available {
			return Payment{}, ErrInsufficientStock
		}
	}

	summary := sess.Summary()
	ref := s.references.New()
	req := gateway.PaymentRequest{
		Reference:   ref,
		ProductID:   sess.Product.ID,
		Title:       sess.Product.Title,
		Description: "Compra de numeros: " + sess.ItemName(),
		Quantity:    qty,
		UnitPrice:   sess.Product.Price,
		Amount:      summary.Total,
		TaxBase:     summary.Total,
		Currency:    gateway.CurrencyCOP,
		Customer: gateway.Customer{
			FirstName:  values.FirstName,
			LastName:   values.LastName,
			Email:      values.Email,
			Phone:      values.Phone,
			Address:    values.Address,
			DocumentID: values.IdentificationNumber,
		},
		ResponseURL:     s.opts.BaseURL + ResultPath,
		ConfirmationURL: s.opts.BaseURL + ConfirmationPath,
	}

	action, err := s.adapter.Start(ctx, req)
	if err != nil {
		return Payment{}, fmt.Errorf("start %s payment: %w", s.adapter.Name(), err)
	}

	slog.InfoContext(ctx, "transaction created",
		"reference", ref,
		"gateway", s.adapter.Name(),
		"quantity", qty,
		"amount", req.Amount,
	)

	event := TransactionCreated{
		Reference: ref,
		Gateway:   string(s.adapter.Name()),
		ProductID: req.ProductID,
		Quantity:  qty,
		Amount:    req.Amount,
		Currency:  req.Currency,
		CreatedAt: s.now().UTC(),
	}
	if err := s.notifier.TransactionCreated(ctx, event); err != nil {
		slog.WarnContext(ctx, "notify transaction created", "reference", ref, "error", err)
	}

	return Payment{Reference: ref, Request: req, Action: action}, nil
}

func attemptResult(err error) string {
	switch {
	case err == nil:
		return "started"
	case errors.Is(err, ErrFormMissing), errors.Is(err, ErrFormInvalid):
		return "invalid_form"
	case errors.Is(err, ErrInsufficientStock):
		return "no_stock"
	default:
		return "error"
	}
}
