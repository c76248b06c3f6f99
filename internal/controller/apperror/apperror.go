// Package apperror maps domain errors to HTTP statuses and the messages
// shown to buyers.
package apperror

import (
	"errors"
	"net/http"

	"LuckyStore/internal/domain/billing"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/internal/domain/product"
)

const (
	MsgFormMissing   = "Por favor complete el formulario para continuar"
	MsgFormInvalid   = "Por favor corrija los errores en el formulario para continuar"
	MsgNoStock       = "No hay suficiente stock para realizar la compra"
	MsgPaymentFailed = "Hubo un error al procesar el pago. Por favor, inténtelo de nuevo."
	MsgInternal      = "Ocurrió un error inesperado. Por favor, inténtelo de nuevo."
)

// Resolve returns the status code and buyer-facing message for err.
func Resolve(err error) (int, string) {
	switch {
	case errors.Is(err, checkout.ErrFormMissing):
		return http.StatusUnprocessableEntity, MsgFormMissing
	case errors.Is(err, checkout.ErrFormInvalid), errors.Is(err, billing.ErrInvalid):
		return http.StatusUnprocessableEntity, MsgFormInvalid
	case errors.Is(err, checkout.ErrInsufficientStock):
		return http.StatusConflict, MsgNoStock
	case errors.Is(err, product.ErrNotFound), errors.Is(err, product.ErrUnavailable):
		return http.StatusServiceUnavailable, product.LoadErrorMessage
	case errors.Is(err, payment.ErrNoTransaction):
		return http.StatusBadRequest, payment.MissingTransactionMessage
	case errors.Is(err, gateway.ErrProvider), errors.Is(err, gateway.ErrPaymentNotFound):
		return http.StatusBadGateway, MsgPaymentFailed
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
