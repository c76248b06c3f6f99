// Package wompi creates Wompi payment-link transactions and reads them back.
package wompi

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
	PublicKey  string
	PrivateKey string
	APIURL     string
}

type Client struct {
	cfg Config
	api *upstream.Client
}

func New(cfg Config, httpClient *http.Client) *Client {
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Client{cfg: cfg, api: upstream.New("wompi", httpClient)}
}

func (c *Client) Name() gateway.Name { return gateway.Wompi }

type merchantResponse struct {
	Data struct {
		PresignedAcceptance struct {
			AcceptanceToken string `json:"acceptance_token"`
		} `json:"presigned_acceptance"`
	} `json:"data"`
}

func (c *Client) acceptanceToken(ctx context.Context) (string, error) {
	var out merchantResponse
	err := c.api.Do(ctx, upstream.Request{
		Operation: "acceptance_token",
		Method:    http.MethodGet,
		URL:       c.cfg.APIURL + "/merchants/" + url.PathEscape(c.cfg.PublicKey),
	}, &out)
	if err != nil {
		return "", err
	}
	token := out.Data.PresignedAcceptance.AcceptanceToken
	if token == "" {
		return "", errors.New("empty acceptance token")
	}
	return token, nil
}

type customerData struct {
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	LegalID     string `json:"legal_id,omitempty"`
	LegalIDType string `json:"legal_id_type,omitempty"`
}

type paymentMethod struct {
	Type string `json:"type"`
}

type transactionRequest struct {
	AcceptanceToken string        `json:"acceptance_token"`
	AmountInCents   int64         `json:"amount_in_cents"`
	Currency        string        `json:"currency"`
	CustomerEmail   string        `json:"customer_email"`
	Reference       string        `json:"reference"`
	CustomerData    customerData  `json:"customer_data"`
	RedirectURL     string        `json:"redirect_url"`
	PaymentMethod   paymentMethod `json:"payment_method"`
}

type transaction struct {
	ID                upstream.String `json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	FinalizedAt       *time.Time      `json:"finalized_at"`
	AmountInCents     int64           `json:"amount_in_cents"`
	Reference         string          `json:"reference"`
	CustomerEmail     string          `json:"customer_email"`
	Currency          string          `json:"currency"`
	PaymentMethodType string          `json:"payment_method_type"`
	Status            string          `json:"status"`
	StatusMessage     string          `json:"status_message"`
	PaymentLinkURL    string          `json:"payment_link_url"`
}

type transactionResponse struct {
	Data transaction `json:"data"`
}

// Start fetches an acceptance token, creates a PAYMENT_LINK transaction and
// redirects the buyer to its payment link. The return URL carries our
// reference so the result page can show it before verification.
func (c *Client) Start(ctx context.Context, req gateway.PaymentRequest) (gateway.Action, error) {
	token, err := c.acceptanceToken(ctx)
	if err != nil {
		return gateway.Action{}, fmt.Errorf("%w: wompi acceptance token: %w", gateway.ErrProvider, err)
	}

	redirect := req.ResponseURL + "?" + url.Values{"reference": {req.Reference}}.Encode()
	body := transactionRequest{
		AcceptanceToken: token,
		AmountInCents:   req.AmountInCents(),
		Currency:        req.Currency,
		CustomerEmail:   req.Customer.Email,
		Reference:       req.Reference,
		CustomerData: customerData{
			PhoneNumber: req.Customer.Phone,
			FullName:    req.Customer.FullName(),
			LegalID:     req.Customer.DocumentID,
			LegalIDType: "CC",
		},
		RedirectURL:   redirect,
		PaymentMethod: paymentMethod{Type: "PAYMENT_LINK"},
	}

	var out transactionResponse
	err = c.api.Do(ctx, upstream.Request{
		Operation: "create_transaction",
		Method:    http.MethodPost,
		URL:       c.cfg.APIURL + "/transactions",
		Bearer:    c.cfg.PublicKey,
		Body:      body,
	}, &out)
	if err != nil {
		return gateway.Action{}, fmt.Errorf("%w: wompi transaction: %w", gateway.ErrProvider, err)
	}
	if out.Data.PaymentLinkURL == "" {
		return gateway.Action{}, fmt.Errorf("%w: wompi transaction %s has no payment link", gateway.ErrProvider, out.Data.ID)
	}

	return gateway.Action{Kind: gateway.ActionRedirect, Gateway: gateway.Wompi, URL: out.Data.PaymentLinkURL}, nil
}

// Verify reads /transactions/{id}. The private key is sent when configured.
func (c *Client) Verify(ctx context.Context, transactionID string) (gateway.Verification, error) {
	var out transactionResponse
	err := c.api.Do(ctx, upstream.Request{
		Operation: "get_transaction",
		Method:    http.MethodGet,
		URL:       c.cfg.APIURL + "/transactions/" + url.PathEscape(transactionID),
		Bearer:    c.cfg.PrivateKey,
	}, &out)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return gateway.Verification{}, gateway.ErrPaymentNotFound
		}
		return gateway.Verification{}, fmt.Errorf("%w: wompi transaction: %w", gateway.ErrProvider, err)
	}

	tx := out.Data
	v := gateway.Verification{
		PaymentID:     string(tx.ID),
		Reference:     tx.Reference,
		RawStatus:     tx.Status,
		StatusDetail:  tx.StatusMessage,
		Amount:        float64(tx.AmountInCents) / 100,
		Currency:      tx.Currency,
		PaymentMethod: tx.PaymentMethodType,
		PayerEmail:    tx.CustomerEmail,
		CreatedAt:     tx.CreatedAt,
	}
	if gateway.CanonicalFor(gateway.Wompi, tx.Status) == gateway.StatusApproved {
		v.ApprovedAt = tx.FinalizedAt
	}
	return v, nil
}
