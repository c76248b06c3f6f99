package checkout

import (
	"math"
	"testing"

	"LuckyStore/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	assert.Equal(t, 16000.0, Total(1600, 10))
	assert.Equal(t, 0.0, Total(math.NaN(), 10))
	assert.Equal(t, 0.0, Total(math.Inf(1), 10))
	assert.Equal(t, 0.0, Total(1600, -1))
}

func TestResolveSelection(t *testing.T) {
	p := product.Product{ID: "ktm-690-smc-r-2025", Price: 1600}

	tests := []struct {
		name        string
		productID   string
		rawQuantity string
		want        Selection
		wantErr     error
	}{
		{
			name:        "quantity from the product page",
			productID:   p.ID,
			rawQuantity: "20",
			want:        Selection{ProductID: p.ID, Quantity: 20, TotalPrice: 32000},
		},
		{
			name:      "missing quantity falls back to one",
			productID: p.ID,
			want:      Selection{ProductID: p.ID, Quantity: 1, TotalPrice: 1600, Fallback: true},
		},
		{
			name:        "unparsable quantity falls back to one",
			productID:   p.ID,
			rawQuantity: "lots",
			want:        Selection{ProductID: p.ID, Quantity: 1, TotalPrice: 1600, Fallback: true},
		},
		{
			name:        "unknown product",
			productID:   "abc",
			rawQuantity: "20",
			wantErr:     ErrNoSelection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSelection(p, tt.productID, tt.rawQuantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSummary(t *testing.T) {
	t.Run("should sum line items", func(t *testing.T) {
		s := NewSummary([]LineItem{{Name: "FP KTM", Quantity: 10, Price: 1600}}, true)

		assert.Equal(t, 16000.0, s.Subtotal)
		assert.Equal(t, 16000.0, s.Total)
		assert.True(t, s.PaymentEnabled)
	})

	t.Run("should render non-numeric values as zero", func(t *testing.T) {
		s := NewSummary([]LineItem{{Name: "FP KTM", Quantity: -3, Price: math.NaN()}}, false)

		assert.Equal(t, 0.0, s.Total)
		assert.Equal(t, 0, s.Items[0].Quantity)
		assert.Equal(t, 0.0, s.Items[0].Price)
		assert.False(t, s.PaymentEnabled)
	})
}
