// Package mercadopago creates Checkout Pro preferences and reads payments
// back from the MercadoPago API.
package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/external/upstream"
)

type Config struct {
	AccessToken         string
	APIURL              string
	StatementDescriptor string
	Sandbox             bool
}

type Client struct {
	cfg Config
	api *upstream.Client
}

func New(cfg Config, httpClient *http.Client) *Client {
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Client{cfg: cfg, api: upstream.New("mercadopago", httpClient)}
}

func (c *Client) Name() gateway.Name { return gateway.MercadoPago }

type preferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id"`
}

type payer struct {
	Name           string         `json:"name"`
	Surname        string         `json:"surname"`
	Email          string         `json:"email"`
	Phone          phone          `json:"phone"`
	Address        address        `json:"address"`
	Identification identification `json:"identification"`
}

type phone struct {
	Number string `json:"number"`
}

type address struct {
	StreetName string `json:"street_name"`
}

type identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items               []preferenceItem `json:"items"`
	Payer               payer            `json:"payer"`
	ExternalReference   string           `json:"external_reference"`
	NotificationURL     string           `json:"notification_url,omitempty"`
	BackURLs            backURLs         `json:"back_urls"`
	AutoReturn          string           `json:"auto_return,omitempty"`
	StatementDescriptor string           `json:"statement_descriptor,omitempty"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// Start creates a preference and redirects the buyer to its checkout.
func (c *Client) Start(ctx context.Context, req gateway.PaymentRequest) (gateway.Action, error) {
	quantity, unitPrice := req.Quantity, req.UnitPrice
	if quantity <= 0 || unitPrice <= 0 {
		quantity, unitPrice = 1, req.Amount
	}

	body := preferenceRequest{
		Items: []preferenceItem{{
			ID:          req.Reference,
			Title:       req.Title,
			Description: req.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			CurrencyID:  req.Currency,
		}},
		Payer: payer{
			Name:           req.Customer.FirstName,
			Surname:        req.Customer.LastName,
			Email:          req.Customer.Email,
			Phone:          phone{Number: req.Customer.Phone},
			Address:        address{StreetName: req.Customer.Address},
			Identification: identification{Type: "CC", Number: req.Customer.DocumentID},
		},
		ExternalReference: req.Reference,
		NotificationURL:   req.ConfirmationURL,
		BackURLs: backURLs{
			Success: req.ResponseURL,
			Failure: req.ResponseURL,
			Pending: req.ResponseURL,
		},
		AutoReturn:          "approved",
		StatementDescriptor: c.cfg.StatementDescriptor,
	}

	var out preferenceResponse
	err := c.api.Do(ctx, upstream.Request{
		Operation: "create_preference",
		Method:    http.MethodPost,
		URL:       c.cfg.APIURL + "/checkout/preferences",
		Bearer:    c.cfg.AccessToken,
		Body:      body,
	}, &out)
	if err != nil {
		return gateway.Action{}, fmt.Errorf("%w: mercadopago preference: %w", gateway.ErrProvider, err)
	}

	redirect := out.InitPoint
	if c.cfg.Sandbox && out.SandboxInitPoint != "" {
		redirect = out.SandboxInitPoint
	}
	if redirect == "" {
		return gateway.Action{}, fmt.Errorf("%w: mercadopago preference %s has no checkout url", gateway.ErrProvider, out.ID)
	}

	return gateway.Action{Kind: gateway.ActionRedirect, Gateway: gateway.MercadoPago, URL: redirect}, nil
}

type paymentResponse struct {
	ID                upstream.String `json:"id"`
	DateCreated       time.Time       `json:"date_created"`
	DateApproved      *time.Time      `json:"date_approved"`
	PaymentMethodID   string          `json:"payment_method_id"`
	PaymentTypeID     string          `json:"payment_type_id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	CurrencyID        string          `json:"currency_id"`
	TransactionAmount float64         `json:"transaction_amount"`
	ExternalReference string          `json:"external_reference"`
	Order             struct {
		ID upstream.String `json:"id"`
	} `json:"order"`
	Payer struct {
		Email string `json:"email"`
	} `json:"payer"`
	AdditionalInfo struct {
		Items []struct {
			Title     string         `json:"title"`
			Quantity  upstream.Float `json:"quantity"`
			UnitPrice upstream.Float `json:"unit_price"`
		} `json:"items"`
	} `json:"additional_info"`
}

// Verify reads /v1/payments/{id}.
func (c *Client) Verify(ctx context.Context, paymentID string) (gateway.Verification, error) {
	var out paymentResponse
	err := c.api.Do(ctx, upstream.Request{
		Operation: "get_payment",
		Method:    http.MethodGet,
		URL:       c.cfg.APIURL + "/v1/payments/" + url.PathEscape(paymentID),
		Bearer:    c.cfg.AccessToken,
	}, &out)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return gateway.Verification{}, gateway.ErrPaymentNotFound
		}
		return gateway.Verification{}, fmt.Errorf("%w: mercadopago payment: %w", gateway.ErrProvider, err)
	}

	method := out.PaymentTypeID
	if method == "" {
		method = out.PaymentMethodID
	}
	v := gateway.Verification{
		PaymentID:       string(out.ID),
		Reference:       out.ExternalReference,
		RawStatus:       out.Status,
		StatusDetail:    out.StatusDetail,
		Amount:          out.TransactionAmount,
		Currency:        out.CurrencyID,
		PaymentMethod:   method,
		PayerEmail:      out.Payer.Email,
		MerchantOrderID: string(out.Order.ID),
		CreatedAt:       out.DateCreated,
		ApprovedAt:      out.DateApproved,
	}
	for _, item := range out.AdditionalInfo.Items {
		v.Items = append(v.Items, gateway.Item{
			Title:     item.Title,
			Quantity:  int(item.Quantity),
			UnitPrice: float64(item.UnitPrice),
		})
	}
	return v, nil
}
