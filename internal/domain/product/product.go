package product

import (
	"fmt"
	"math"
	"time"
)

// DefaultDigits is used when the catalog does not say how wide numbers are.
const DefaultDigits = 3

// LoadErrorMessage is shown whenever the product cannot be loaded.
const LoadErrorMessage = "Error al cargar los datos. Por favor, inténtalo de nuevo más tarde."

type SpecialNumber struct {
	ID        int  `json:"id"`
	Number    int  `json:"number"`
	HasWinner bool `json:"has_winner"`
}

// Product is one lottery-number draw offered by the store. Stock is the
// count of numbers still unsold out of 10^Digits.
type Product struct {
	ID             string          `json:"lottery_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Image          string          `json:"image"`
	Price          float64         `json:"price"`
	Stock          int             `json:"stock"`
	Reserved       int             `json:"reserved"`
	Digits         int             `json:"digits"`
	IsActive       bool            `json:"is_active"`
	UpdatedAt      time.Time       `json:"updated_at"`
	SpecialNumbers []SpecialNumber `json:"special_numbers"`
}

func (p Product) digits() int {
	if p.Digits <= 0 {
		return DefaultDigits
	}
	return p.Digits
}

// TotalNumbers is the size of the number space, 10^Digits.
func (p Product) TotalNumbers() int {
	return int(math.Pow10(p.digits()))
}

// FormatNumber left-pads n with zeros to the product's digit width.
func (p Product) FormatNumber(n int) string {
	return fmt.Sprintf("%0*d", p.digits(), n)
}

// Progress is the sold percentage, clamped to [0, 100].
func (p Product) Progress() float64 {
	sold := 100 - float64(p.Stock)/float64(p.TotalNumbers())*100
	return math.Max(0, math.Min(100, sold))
}

// Matches reports whether id names this product.
func (p Product) Matches(id string) bool {
	return id != "" && id == p.ID
}
