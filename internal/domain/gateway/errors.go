package gateway

import "errors"

var (
	ErrUnknownGateway = errors.New("unknown payment gateway")
	// ErrProvider wraps any non-2xx or malformed provider response.
	ErrProvider        = errors.New("payment provider error")
	ErrPaymentNotFound = errors.New("payment not found")
)
