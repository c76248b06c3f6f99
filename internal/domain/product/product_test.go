package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_FormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		n      int
		want   string
	}{
		{name: "default width", digits: 0, n: 7, want: "007"},
		{name: "five digits", digits: 5, n: 1942, want: "01942"},
		{name: "wider than width", digits: 2, n: 123, want: "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Product{Digits: tt.digits}.FormatNumber(tt.n))
		})
	}
}

func TestProduct_Progress(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		digits int
		want   float64
	}{
		{name: "partially sold", stock: 36800, digits: 5, want: 63.2},
		{name: "nothing sold", stock: 1000, digits: 3, want: 0},
		{name: "sold out", stock: 0, digits: 3, want: 100},
		{name: "stock above total clamps to zero", stock: 5000, digits: 3, want: 0},
		{name: "negative stock clamps to hundred", stock: -10, digits: 3, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Product{Stock: tt.stock, Digits: tt.digits}.Progress(), 1e-9)
		})
	}
}

func TestProduct_Matches(t *testing.T) {
	p := Product{ID: "ktm-690-smc-r-2025"}

	assert.True(t, p.Matches("ktm-690-smc-r-2025"))
	assert.False(t, p.Matches("other"))
	assert.False(t, Product{}.Matches(""))
}
