package checkout

import "errors"

var (
	ErrBelowMinimum      = errors.New("quantity below minimum purchase")
	ErrNoSelection       = errors.New("no purchase selection")
	ErrFormMissing       = errors.New("billing form not filled")
	ErrFormInvalid       = errors.New("billing form has errors")
	ErrInsufficientStock = errors.New("insufficient stock")
)
