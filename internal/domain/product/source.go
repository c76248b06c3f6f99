package product

import (
	"context"
	"errors"
)

//go:generate mockgen -source source.go -destination mock_source.go -package product

var (
	ErrNotFound    = errors.New("product not found")
	ErrUnavailable = errors.New("product source unavailable")
)

// Source loads the product currently on sale and answers stock checks.
type Source interface {
	Current(ctx context.Context) (Product, error)
	// CheckStock reports whether quantity numbers can still be sold.
	CheckStock(ctx context.Context, quantity int) (bool, error)
}
