package gateway

import (
	"math"
	"net/url"
	"sort"
)

const CurrencyCOP = "COP"

type Customer struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	DocumentID string
}

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// PaymentRequest is everything an adapter needs to start one payment.
// Amount is the gross total; Tax and TaxBase are always zero for lottery
// numbers but some providers require them explicitly.
type PaymentRequest struct {
	Reference   string
	ProductID   string
	Title       string
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
	Tax         float64
	TaxBase     float64
	Currency    string
	Customer    Customer

	// ResponseURL is where the provider sends the buyer back to,
	// ConfirmationURL receives the provider's server-to-server callback.
	ResponseURL     string
	ConfirmationURL string
}

// AmountInCents rounds Amount to the provider's minor unit.
func (r PaymentRequest) AmountInCents() int64 {
	return int64(math.Round(r.Amount * 100))
}

type ActionKind string

const (
	ActionRedirect ActionKind = "redirect"
	ActionForm     ActionKind = "form"
	ActionWidget   ActionKind = "widget"
)

type FormField struct {
	Name  string
	Value string
}

// Action tells the checkout page how to hand the buyer over:
// follow URL, auto-submit Fields to URL, or load ScriptURL and open the
// provider widget with WidgetConfig and WidgetData.
type Action struct {
	Kind         ActionKind
	Gateway      Name
	URL          string
	Fields       []FormField
	ScriptURL    string
	WidgetConfig map[string]any
	WidgetData   map[string]string
}

// FieldsFromValues flattens url.Values into hidden form fields sorted by name.
func FieldsFromValues(values url.Values) []FormField {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]FormField, 0, len(keys))
	for _, k := range keys {
		for _, v := range values[k] {
			fields = append(fields, FormField{Name: k, Value: v})
		}
	}
	return fields
}
