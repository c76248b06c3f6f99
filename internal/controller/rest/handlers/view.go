package handlers

import (
	"net/url"
	"strconv"

	"LuckyStore/internal/domain/billing"
	"LuckyStore/internal/domain/checkout"

	"github.com/google/go-querystring/query"
)

// Page is the data every template's layout needs.
type Page struct {
	Store       string
	Title       string
	MinQuantity int
}

type fieldView struct {
	Name  billing.Field
	Label string
	Type  string
	Value string
	Error string
}

var fieldInputs = map[billing.Field]struct{ label, kind string }{
	billing.FieldFirstName:            {"Nombre", "text"},
	billing.FieldLastName:             {"Apellidos", "text"},
	billing.FieldIdentificationNumber: {"Cédula o Número de Identificación", "text"},
	billing.FieldAddress:              {"Dirección", "text"},
	billing.FieldPhone:                {"Teléfono", "tel"},
	billing.FieldEmail:                {"Dirección de correo electrónico", "email"},
	billing.FieldConfirmEmail:         {"Confirmar correo electrónico", "email"},
}

// billingFields lists the form inputs in display order with the errors
// of touched fields only.
func billingFields(form *billing.Form) []fieldView {
	values := form.Values()
	errs := form.VisibleErrors()

	out := make([]fieldView, 0, len(billing.Fields))
	for _, f := range billing.Fields {
		in := fieldInputs[f]
		out = append(out, fieldView{
			Name:  f,
			Label: in.label,
			Type:  in.kind,
			Value: values.Get(f),
			Error: errs[f],
		})
	}
	return out
}

type checkoutQuery struct {
	Quantity int    `url:"quantity"`
	Total    string `url:"total"`
}

// checkoutURL is where a confirmed selection continues. The total is
// advisory; the checkout page recomputes it.
func checkoutURL(sel checkout.Selection) string {
	q, err := query.Values(checkoutQuery{
		Quantity: sel.Quantity,
		Total:    strconv.FormatFloat(sel.TotalPrice, 'f', -1, 64),
	})
	if err != nil {
		q = url.Values{"quantity": {strconv.Itoa(sel.Quantity)}}
	}
	return "/checkout/" + url.PathEscape(sel.ProductID) + "?" + q.Encode()
}
