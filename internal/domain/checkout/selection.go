package checkout

import (
	"math"
	"strconv"
	"strings"

	"LuckyStore/internal/domain/product"
)

// Selection is what the buyer chose on the product page. It travels to the
// checkout page as query parameters.
type Selection struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	// Fallback is set when the checkout page was opened without a usable
	// quantity. Such a selection is paid as is, below the minimum too.
	Fallback bool `json:"fallback,omitempty"`
}

// Total multiplies price by quantity. Non-finite or negative inputs yield 0.
func Total(unitPrice float64, quantity int) float64 {
	if quantity < 0 || !finite(unitPrice) {
		return 0
	}
	t := unitPrice * float64(quantity)
	if !finite(t) || t < 0 {
		return 0
	}
	return t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ResolveSelection rebuilds the selection on the checkout page from the
// path id and the raw quantity parameter. The product must be the one on
// sale. A missing quantity falls back to a single number; an unparsable
// one also falls back to 1. The total is always recomputed server-side.
func ResolveSelection(p product.Product, productID, rawQuantity string) (Selection, error) {
	if !p.Matches(productID) {
		return Selection{}, ErrNoSelection
	}

	quantity, fallback := 1, true
	if raw := strings.TrimSpace(rawQuantity); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			quantity, fallback = n, false
		}
	}

	return Selection{
		ProductID:  p.ID,
		Quantity:   quantity,
		TotalPrice: Total(p.Price, quantity),
		Fallback:   fallback,
	}, nil
}
