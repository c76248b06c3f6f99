package gateway

import "strings"

const rejectionDetailPrefix = "cc_rejected"

var detailMessages = map[string]string{
	"accredited":                           "El pago ha sido aprobado y acreditado.",
	"pending_contingency":                  "El pago está siendo procesado.",
	"pending_review_manual":                "El pago está en revisión manual.",
	"cc_rejected_bad_filled_card_number":   "Revise el número de tarjeta.",
	"cc_rejected_bad_filled_date":          "Revise la fecha de vencimiento.",
	"cc_rejected_bad_filled_other":         "Revise los datos ingresados.",
	"cc_rejected_bad_filled_security_code": "Revise el código de seguridad.",
	"cc_rejected_blacklist":                "No pudimos procesar su pago.",
	"cc_rejected_call_for_authorize":       "Debe autorizar el pago con su banco.",
	"cc_rejected_card_disabled":            "Llame a su banco para activar su tarjeta.",
	"cc_rejected_duplicated_payment":       "Ya realizó un pago por ese valor.",
	"cc_rejected_high_risk":                "Su pago fue rechazado.",
	"cc_rejected_insufficient_amount":      "Fondos insuficientes.",
	"cc_rejected_invalid_installments":     "Número de cuotas no válido.",
	"cc_rejected_max_attempts":             "Llegó al límite de intentos permitidos.",
	"cc_rejected_other_reason":             "Su banco no procesó el pago.",
}

// DetailMessage explains a provider status detail to the buyer. Unknown
// details are returned as-is.
func DetailMessage(detail string) string {
	if msg, ok := detailMessages[strings.ToLower(strings.TrimSpace(detail))]; ok {
		return msg
	}
	return detail
}

// IsRejectionDetail reports whether detail is a card-rejection code.
func IsRejectionDetail(detail string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(detail)), rejectionDetailPrefix)
}

var methodLabels = map[string]string{
	"credit_card":      "Tarjeta de crédito",
	"debit_card":       "Tarjeta de débito",
	"prepaid_card":     "Tarjeta prepago",
	"ticket":           "Efectivo",
	"atm":              "Cajero automático",
	"bank_transfer":    "Transferencia bancaria",
	"account_money":    "Dinero en cuenta",
	"digital_currency": "Moneda digital",
	"digital_wallet":   "Billetera digital",
	"pse":              "PSE",
	"card":             "Tarjeta",
	"nequi":            "Nequi",
	"bancolombia":      "Bancolombia",
}

// MethodLabel is the buyer-facing name of a payment method code.
func MethodLabel(method string) string {
	if label, ok := methodLabels[strings.ToLower(strings.TrimSpace(method))]; ok {
		return label
	}
	return method
}
