package payment

import (
	"time"

	"LuckyStore/internal/domain/gateway"
)

// MissingTransactionMessage is shown when the return URL names no payment.
const MissingTransactionMessage = "No se encontró información válida de la transacción"

// Outcome is the reconciled state of one payment. Verified is true only
// when the fields come from the provider's API rather than from the
// browser's return URL.
type Outcome struct {
	Gateway         gateway.Name   `json:"gateway"`
	Status          gateway.Status `json:"status"`
	RawStatus       string         `json:"raw_status"`
	PaymentID       string         `json:"payment_id"`
	Reference       string         `json:"reference,omitempty"`
	MerchantOrderID string         `json:"merchant_order_id,omitempty"`
	Amount          float64        `json:"amount"`
	Currency        string         `json:"currency"`
	StatusDetail    string         `json:"status_detail,omitempty"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	PayerEmail      string         `json:"payer_email,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	Items           []gateway.Item `json:"items,omitempty"`
	Verified        bool           `json:"verified"`
}

func (o Outcome) DetailMessage() string {
	if o.StatusDetail == "" {
		return ""
	}
	return gateway.DetailMessage(o.StatusDetail)
}

func (o Outcome) MethodLabel() string {
	return gateway.MethodLabel(o.PaymentMethod)
}

// Result is what the payment-result page renders. When Error is set no
// outcome could be built.
type Result struct {
	Outcome Outcome
	Error   string
}

func (r Result) Headline() string {
	switch r.Outcome.Status {
	case gateway.StatusApproved:
		return "¡Pago completado con éxito!"
	case gateway.StatusPending:
		return "Pago en procesamiento"
	default:
		return "No se completó el pago"
	}
}

func (r Result) Description() string {
	switch r.Outcome.Status {
	case gateway.StatusApproved:
		return "Tu transacción ha sido procesada correctamente."
	case gateway.StatusPending:
		return "Tu pago está siendo procesado. Te notificaremos cuando se complete."
	default:
		return "Hubo un problema al procesar tu pago. Por favor, intenta nuevamente."
	}
}

func (r Result) StatusLabel() string {
	switch r.Outcome.Status {
	case gateway.StatusApproved:
		return "Aprobado"
	case gateway.StatusPending:
		return "Pendiente"
	case gateway.StatusRejected:
		return "Rechazado"
	default:
		return "Desconocido"
	}
}

// UnverifiedNotice names the provider whose API could not confirm the data.
func (r Result) UnverifiedNotice() string {
	if r.Error != "" || r.Outcome.Verified {
		return ""
	}
	return "Información no verificada con " + r.Outcome.Gateway.Label()
}
