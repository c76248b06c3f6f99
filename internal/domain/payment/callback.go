package payment

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"LuckyStore/internal/domain/gateway"
	"LuckyStore/pkg/pointers"
)

// callback is what the provider put on the buyer's return URL: which
// provider it was, the id to verify with, and the unverified fields to
// fall back on.
type callback struct {
	gateway  gateway.Name
	id       string
	fallback gateway.Verification
}

// parseCallback recognises the return parameters of each provider.
// ePayco appends ref_payco (and x_* fields on the confirmation call),
// MercadoPago appends payment_id/collection_id, Wompi appends id with the
// reference we set on redirect_url.
func parseCallback(params url.Values, now time.Time) (callback, bool) {
	switch {
	case has(params, "ref_payco", "x_ref_payco", "x_response", "x_id_invoice"):
		return epaycoCallback(params), true
	case has(params, "payment_id", "collection_id"):
		return mercadoPagoCallback(params, now), true
	case has(params, "id", "reference") && !has(params, "preference_id"):
		return wompiCallback(params), true
	}
	return callback{}, false
}

func epaycoCallback(p url.Values) callback {
	return callback{
		gateway: gateway.Epayco,
		id:      first(p, "ref_payco", "x_ref_payco"),
		fallback: gateway.Verification{
			PaymentID:     first(p, "x_transaction_id", "ref_payco", "x_ref_payco"),
			Reference:     p.Get("x_id_invoice"),
			RawStatus:     p.Get("x_response"),
			StatusDetail:  p.Get("x_response_reason_text"),
			Amount:        parseAmount(p.Get("x_amount")),
			Currency:      orDefault(p.Get("x_currency_code"), gateway.CurrencyCOP),
			PaymentMethod: p.Get("x_franchise"),
			PayerEmail:    p.Get("x_customer_email"),
		},
	}
}

func mercadoPagoCallback(p url.Values, now time.Time) callback {
	id := first(p, "payment_id", "collection_id")
	status := first(p, "status", "collection_status")
	v := gateway.Verification{
		PaymentID:       id,
		Reference:       p.Get("external_reference"),
		RawStatus:       status,
		StatusDetail:    first(p, "status_detail", "status"),
		Currency:        gateway.CurrencyCOP,
		PaymentMethod:   p.Get("payment_type"),
		MerchantOrderID: p.Get("merchant_order_id"),
		CreatedAt:       now,
	}
	if v.Reference == "null" {
		v.Reference = ""
	}
	if gateway.CanonicalFor(gateway.MercadoPago, status) == gateway.StatusApproved {
		v.ApprovedAt = pointers.Ptr(now)
	}
	return callback{gateway: gateway.MercadoPago, id: id, fallback: v}
}

func wompiCallback(p url.Values) callback {
	return callback{
		gateway: gateway.Wompi,
		id:      p.Get("id"),
		fallback: gateway.Verification{
			PaymentID: p.Get("id"),
			Reference: p.Get("reference"),
			RawStatus: p.Get("status"),
			Currency:  gateway.CurrencyCOP,
		},
	}
}

func has(p url.Values, keys ...string) bool {
	return first(p, keys...) != ""
}

// first returns the first non-empty value among keys.
func first(p url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(p.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseAmount(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
