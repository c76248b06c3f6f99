// Package lottery reads the product on sale from the lottery HTTP API.
package lottery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"LuckyStore/internal/domain/product"
	"LuckyStore/internal/external/upstream"

	"github.com/google/go-querystring/query"
)

type Client struct {
	baseURL string
	api     *upstream.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		api:     upstream.New("lottery", httpClient),
	}
}

func (c *Client) Current(ctx context.Context) (product.Product, error) {
	var raw json.RawMessage
	err := c.api.Do(ctx, upstream.Request{
		Operation: "current",
		Method:    http.MethodGet,
		URL:       c.baseURL,
	}, &raw)
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: lottery api: %w", product.ErrUnavailable, err)
	}
	return DecodeProduct(raw)
}

type stockQuery struct {
	Quantity int `url:"quantity"`
}

type stockResponse struct {
	AvailableStock bool `json:"available_stock"`
}

func (c *Client) CheckStock(ctx context.Context, quantity int) (bool, error) {
	q, err := query.Values(stockQuery{Quantity: quantity})
	if err != nil {
		return false, fmt.Errorf("encode stock query: %w", err)
	}

	var out stockResponse
	err = c.api.Do(ctx, upstream.Request{
		Operation: "stock",
		Method:    http.MethodGet,
		URL:       c.baseURL + "/status?" + q.Encode(),
	}, &out)
	if err != nil {
		return false, fmt.Errorf("%w: lottery stock: %w", product.ErrUnavailable, err)
	}
	return out.AvailableStock, nil
}
