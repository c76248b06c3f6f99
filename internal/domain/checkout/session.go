package checkout

import (
	"LuckyStore/internal/domain/billing"
	"LuckyStore/internal/domain/product"
)

// ItemNamePrefix is prepended to the product title on order lines.
const ItemNamePrefix = "FP "

// Session is one checkout page: the product, the buyer's selection and the
// billing form. It receives the form's validity and values through the
// form callbacks and is the only place that decides whether paying is
// allowed.
type Session struct {
	Product   product.Product
	Selection Selection

	form      *billing.Form
	valid     bool
	values    billing.Values
	hasValues bool
}

func NewSession(p product.Product, sel Selection) *Session {
	s := &Session{Product: p, Selection: sel}
	s.form = billing.NewForm(s.setValid, s.setValues)
	return s
}

func (s *Session) setValid(ok bool) { s.valid = ok }

func (s *Session) setValues(v billing.Values) {
	s.values = v
	s.hasValues = v != (billing.Values{})
}

func (s *Session) Form() *billing.Form { return s.form }

func (s *Session) Valid() bool { return s.valid }

// Values returns the last values the form reported, and false when the
// buyer has not typed anything yet.
func (s *Session) Values() (billing.Values, bool) {
	return s.values, s.hasValues
}

func (s *Session) ItemName() string {
	return ItemNamePrefix + s.Product.Title
}

func (s *Session) Summary() Summary {
	return NewSummary([]LineItem{{
		Name:     s.ItemName(),
		Quantity: s.Selection.Quantity,
		Price:    s.Product.Price,
	}}, s.valid)
}
