package checkout

import (
	"fmt"
	"strconv"
	"strings"

	"LuckyStore/internal/domain/product"
)

// DefaultMinQuantity is the smallest purchase allowed unless configured.
const DefaultMinQuantity = 4

// PackageSizes are the preset bundles shown on the product page.
var PackageSizes = []int{10, 20, 30, 40, 50}

type Package struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// QuantityState is the custom-quantity input after an edit: the value to
// show, whether "buy" is enabled, and the inline message if any.
type QuantityState struct {
	Quantity int    `json:"quantity"`
	Enabled  bool   `json:"enabled"`
	Message  string `json:"message,omitempty"`
}

type Selector struct {
	min int
}

func NewSelector(minQuantity int) Selector {
	if minQuantity < 1 {
		minQuantity = DefaultMinQuantity
	}
	return Selector{min: minQuantity}
}

func (s Selector) MinQuantity() int { return s.min }

// MinimumMessage is shown next to a quantity below the minimum.
func (s Selector) MinimumMessage() string {
	return fmt.Sprintf("La cantidad mínima de compra es %d unidades", s.min)
}

// Packages lists the preset bundles. A bundle smaller than the minimum is
// raised to it.
func (s Selector) Packages(unitPrice float64) []Package {
	out := make([]Package, 0, len(PackageSizes))
	for _, size := range PackageSizes {
		q := max(size, s.min)
		out = append(out, Package{Quantity: q, Price: Total(unitPrice, q)})
	}
	return out
}

// Evaluate applies one edit of the custom quantity input. The leading
// integer of the input is used ("12abc" is 12). Input without one resets
// to the minimum without a message; a number below the minimum is kept but
// disables buying.
func (s Selector) Evaluate(raw string) QuantityState {
	n, ok := leadingInt(raw)
	if !ok {
		return QuantityState{Quantity: s.min, Enabled: true}
	}
	if n < s.min {
		return QuantityState{Quantity: n, Enabled: false, Message: s.MinimumMessage()}
	}
	return QuantityState{Quantity: n, Enabled: true}
}

// Confirm turns a chosen quantity into a Selection for p.
func (s Selector) Confirm(p product.Product, quantity int) (Selection, error) {
	if quantity < s.min {
		return Selection{}, ErrBelowMinimum
	}
	return Selection{
		ProductID:  p.ID,
		Quantity:   quantity,
		TotalPrice: Total(p.Price, quantity),
	}, nil
}

// leadingInt reads an optionally signed run of digits at the start of raw,
// after surrounding spaces.
func leadingInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	start := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
