package checkout

import "math"

type LineItem struct {
	Name     string
	Quantity int
	Price    float64
}

func (i LineItem) Subtotal() float64 {
	return Total(i.Price, i.Quantity)
}

// Summary is the order box on the checkout page. Payment is enabled only
// while the billing form is valid.
type Summary struct {
	Items          []LineItem
	Subtotal       float64
	Total          float64
	PaymentEnabled bool
}

func NewSummary(items []LineItem, formValid bool) Summary {
	safe := make([]LineItem, len(items))
	var subtotal float64
	for i, item := range items {
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
			item.Price = 0
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		safe[i] = item
		subtotal += item.Subtotal()
	}
	return Summary{
		Items:          safe,
		Subtotal:       subtotal,
		Total:          subtotal,
		PaymentEnabled: formValid,
	}
}
