// Package epayco starts ePayco checkouts and verifies their results.
package epayco

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/external/upstream"
	"LuckyStore/pkg/pointers"

	"github.com/google/go-querystring/query"
)

type Mode string

const (
	// ModeWidget loads checkout.js and opens the hosted widget.
	ModeWidget Mode = "widget"
	// ModeForm posts a hidden form to the hosted checkout.
	ModeForm Mode = "form"
)

type Config struct {
	PublicKey     string
	Sandbox       bool
	Mode          Mode
	CheckoutURL   string
	ScriptURL     string
	ValidationURL string
	MerchantName  string
}

type Client struct {
	cfg Config
	api *upstream.Client
}

func New(cfg Config, httpClient *http.Client) *Client {
	if cfg.Mode == "" {
		cfg.Mode = ModeWidget
	}
	cfg.ValidationURL = strings.TrimRight(cfg.ValidationURL, "/")
	return &Client{cfg: cfg, api: upstream.New("epayco", httpClient)}
}

func (c *Client) Name() gateway.Name { return gateway.Epayco }

// checkoutFields is the field set ePayco's hosted checkout accepts, both
// as widget data and as form fields.
type checkoutFields struct {
	Name        string `url:"name"`
	Description string `url:"description"`
	Invoice     string `url:"invoice"`
	Currency    string `url:"currency"`
	Amount      string `url:"amount"`
	TaxBase     string `url:"tax_base"`
	Tax         string `url:"tax"`
	Country     string `url:"country"`
	Lang        string `url:"lang"`
	External    string `url:"external"`
	Response    string `url:"response"`
	Confirm     string `url:"confirmation,omitempty"`
	Test        string `url:"test,omitempty"`
	Key         string `url:"key,omitempty"`

	NameBilling        string `url:"name_billing"`
	LastNameBilling    string `url:"last_name_billing"`
	EmailBilling       string `url:"email_billing"`
	AddressBilling     string `url:"address_billing"`
	PhoneBilling       string `url:"phone_billing"`
	MobilephoneBilling string `url:"mobilephone_billing"`
	TypeDocBilling     string `url:"type_doc_billing"`
	NumberDocBilling   string `url:"number_doc_billing"`

	Extra1 string `url:"extra1"`
	Extra2 string `url:"extra2"`
	Extra3 string `url:"extra3"`
}

func (c *Client) fields(req gateway.PaymentRequest) checkoutFields {
	return checkoutFields{
		Name:               c.cfg.MerchantName,
		Description:        req.Description,
		Invoice:            req.Reference,
		Currency:           strings.ToLower(req.Currency),
		Amount:             formatAmount(req.Amount),
		TaxBase:            formatAmount(req.TaxBase),
		Tax:                formatAmount(req.Tax),
		Country:            "co",
		Lang:               "es",
		External:           "false",
		Response:           req.ResponseURL,
		Confirm:            req.ConfirmationURL,
		NameBilling:        req.Customer.FirstName,
		LastNameBilling:    req.Customer.LastName,
		EmailBilling:       req.Customer.Email,
		AddressBilling:     req.Customer.Address,
		PhoneBilling:       req.Customer.Phone,
		MobilephoneBilling: req.Customer.Phone,
		TypeDocBilling:     "cc",
		NumberDocBilling:   req.Customer.DocumentID,
		Extra1:             "numeros",
		Extra2:             req.Reference,
		Extra3:             "checkout_" + string(c.cfg.Mode),
	}
}

// Start builds the widget or form hand-off. No call to ePayco is made
// here; the browser talks to the hosted checkout directly.
func (c *Client) Start(_ context.Context, req gateway.PaymentRequest) (gateway.Action, error) {
	f := c.fields(req)

	if c.cfg.Mode == ModeForm {
		f.Key = c.cfg.PublicKey
		f.Test = strconv.FormatBool(c.cfg.Sandbox)
		values, err := query.Values(f)
		if err != nil {
			return gateway.Action{}, fmt.Errorf("encode checkout form: %w", err)
		}
		return gateway.Action{
			Kind:    gateway.ActionForm,
			Gateway: gateway.Epayco,
			URL:     c.cfg.CheckoutURL,
			Fields:  gateway.FieldsFromValues(values),
		}, nil
	}

	values, err := query.Values(f)
	if err != nil {
		return gateway.Action{}, fmt.Errorf("encode checkout data: %w", err)
	}
	data := make(map[string]string, len(values))
	for k := range values {
		data[k] = values.Get(k)
	}
	return gateway.Action{
		Kind:      gateway.ActionWidget,
		Gateway:   gateway.Epayco,
		ScriptURL: c.cfg.ScriptURL,
		WidgetConfig: map[string]any{
			"key":  c.cfg.PublicKey,
			"test": c.cfg.Sandbox,
		},
		WidgetData: data,
	}, nil
}

type validationResponse struct {
	Success bool           `json:"success"`
	Title   string         `json:"title_response"`
	Data    validationData `json:"data"`
}

type validationData struct {
	RefPayco        upstream.String `json:"x_ref_payco"`
	Invoice         string          `json:"x_id_invoice"`
	TransactionID   upstream.String `json:"x_transaction_id"`
	Amount          upstream.Float  `json:"x_amount"`
	CurrencyCode    string          `json:"x_currency_code"`
	Response        string          `json:"x_response"`
	ResponseReason  string          `json:"x_response_reason_text"`
	Franchise       string          `json:"x_franchise"`
	TransactionDate string          `json:"x_transaction_date"`
	CustomerEmail   string          `json:"x_customer_email"`
	Description     string          `json:"x_description"`
}

const transactionDateLayout = "2006-01-02 15:04:05"

// Verify looks a payment up by ref_payco on ePayco's public validation API.
func (c *Client) Verify(ctx context.Context, refPayco string) (gateway.Verification, error) {
	var out validationResponse
	err := c.api.Do(ctx, upstream.Request{
		Operation: "verify",
		Method:    http.MethodGet,
		URL:       c.cfg.ValidationURL + "/" + url.PathEscape(refPayco),
	}, &out)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return gateway.Verification{}, gateway.ErrPaymentNotFound
		}
		return gateway.Verification{}, fmt.Errorf("%w: epayco: %w", gateway.ErrProvider, err)
	}
	if !out.Success {
		return gateway.Verification{}, fmt.Errorf("%w: %s", gateway.ErrPaymentNotFound, out.Title)
	}

	d := out.Data
	v := gateway.Verification{
		PaymentID:     orDefault(string(d.TransactionID), string(d.RefPayco)),
		Reference:     d.Invoice,
		RawStatus:     d.Response,
		StatusDetail:  d.ResponseReason,
		Amount:        float64(d.Amount),
		Currency:      strings.ToUpper(d.CurrencyCode),
		PaymentMethod: d.Franchise,
		PayerEmail:    d.CustomerEmail,
	}
	if t, err := time.Parse(transactionDateLayout, d.TransactionDate); err == nil {
		v.CreatedAt = t
		if gateway.CanonicalFor(gateway.Epayco, d.Response) == gateway.StatusApproved {
			v.ApprovedAt = pointers.Ptr(t)
		}
	}
	if d.Description != "" {
		v.Items = []gateway.Item{{Title: d.Description, Quantity: 1, UnitPrice: float64(d.Amount)}}
	}
	return v, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
