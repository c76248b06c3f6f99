package product_repo

import (
	"context"
	"time"

	"LuckyStore/internal/domain/product"
)

// MemorySource always offers the same demo product and never runs out
// of stock. It backs PRODUCT_SOURCE=mock.
type MemorySource struct {
	product product.Product
}

func NewMemorySource() *MemorySource {
	return &MemorySource{product: DemoProduct()}
}

func DemoProduct() product.Product {
	numbers := []int{34819, 67398, 66748, 93864, 27340, 64281, 29146, 18327, 27395, 16942}
	special := make([]product.SpecialNumber, len(numbers))
	for i, n := range numbers {
		special[i] = product.SpecialNumber{ID: i + 1, Number: n}
	}

	return product.Product{
		ID:             "ktm-690-smc-r-2025",
		Title:          "KTM 690 SMC R 2025",
		Description:    "UN JUGUETOTE!",
		Image:          "/static/product.svg",
		Price:          1600,
		Stock:          36800,
		Digits:         5,
		IsActive:       true,
		UpdatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		SpecialNumbers: special,
	}
}

func (m *MemorySource) Current(context.Context) (product.Product, error) {
	p := m.product
	p.SpecialNumbers = append([]product.SpecialNumber(nil), m.product.SpecialNumbers...)
	return p, nil
}

func (m *MemorySource) CheckStock(_ context.Context, quantity int) (bool, error) {
	return quantity <= m.product.Stock, nil
}
