package payment

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"LuckyStore/internal/domain/gateway"
	"LuckyStore/pkg/metrics"
)

//go:generate mockgen -source reconciler.go -destination mock_reconciler.go -package payment

var ErrNoTransaction = errors.New("no transaction in callback")

// Notifier receives every outcome confirmed by a provider callback.
type Notifier interface {
	OutcomeReconciled(ctx context.Context, outcome Outcome) error
}

// Reconciler turns a provider return URL or confirmation callback into an
// Outcome. A provider's API answer always wins over what the URL says; the
// URL is used only when there is no verifier for the provider or the
// lookup fails, and such outcomes are marked unverified.
type Reconciler struct {
	verifiers map[gateway.Name]gateway.Verifier
	notifier  Notifier
	now       func() time.Time
}

func NewReconciler(notifier Notifier, verifiers ...gateway.Verifier) *Reconciler {
	r := &Reconciler{
		verifiers: make(map[gateway.Name]gateway.Verifier, len(verifiers)),
		notifier:  notifier,
		now:       time.Now,
	}
	for _, v := range verifiers {
		r.verifiers[v.Name()] = v
	}
	return r
}

// Reconcile never fails: problems end up in Result.Error or as an
// unverified outcome.
func (r *Reconciler) Reconcile(ctx context.Context, params url.Values) Result {
	cb, ok := parseCallback(params, r.now())
	if !ok {
		return Result{Error: MissingTransactionMessage, Outcome: Outcome{Status: gateway.StatusUnknown}}
	}

	outcome := r.verify(ctx, cb)
	metrics.PaymentOutcomes.WithLabelValues(
		string(outcome.Gateway), string(outcome.Status), strconv.FormatBool(outcome.Verified),
	).Inc()

	return Result{Outcome: outcome}
}

// Confirm reconciles a server-to-server callback and forwards the outcome
// to the notifier.
func (r *Reconciler) Confirm(ctx context.Context, params url.Values) (Result, error) {
	res := r.Reconcile(ctx, params)
	if res.Error != "" {
		return res, ErrNoTransaction
	}

	slog.InfoContext(ctx, "payment confirmation",
		"gateway", res.Outcome.Gateway,
		"reference", res.Outcome.Reference,
		"status", res.Outcome.Status,
		"verified", res.Outcome.Verified,
	)
	if r.notifier != nil {
		if err := r.notifier.OutcomeReconciled(ctx, res.Outcome); err != nil {
			slog.WarnContext(ctx, "notify payment outcome", "reference", res.Outcome.Reference, "error", err)
		}
	}
	return res, nil
}

func (r *Reconciler) verify(ctx context.Context, cb callback) Outcome {
	verifier, ok := r.verifiers[cb.gateway]
	if !ok || cb.id == "" {
		return newOutcome(cb, cb.fallback, false)
	}

	v, err := verifier.Verify(ctx, cb.id)
	if err != nil {
		slog.WarnContext(ctx, "payment verification failed, using return parameters",
			"gateway", cb.gateway,
			"payment_id", cb.id,
			"error", err,
		)
		return newOutcome(cb, cb.fallback, false)
	}
	return newOutcome(cb, v, true)
}

func newOutcome(cb callback, v gateway.Verification, verified bool) Outcome {
	status := gateway.CanonicalFor(cb.gateway, v.RawStatus)
	if status == gateway.StatusUnknown && gateway.IsRejectionDetail(v.StatusDetail) {
		status = gateway.StatusRejected
	}

	o := Outcome{
		Gateway:         cb.gateway,
		Status:          status,
		RawStatus:       v.RawStatus,
		PaymentID:       orDefault(v.PaymentID, cb.id),
		Reference:       v.Reference,
		MerchantOrderID: v.MerchantOrderID,
		Amount:          v.Amount,
		Currency:        orDefault(v.Currency, gateway.CurrencyCOP),
		StatusDetail:    v.StatusDetail,
		PaymentMethod:   v.PaymentMethod,
		PayerEmail:      v.PayerEmail,
		CreatedAt:       v.CreatedAt,
		ApprovedAt:      v.ApprovedAt,
		Items:           v.Items,
		Verified:        verified,
	}
	if o.MerchantOrderID == "" {
		o.MerchantOrderID = cb.fallback.MerchantOrderID
	}
	return o
}
