package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/product"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"form missing", checkout.ErrFormMissing, http.StatusUnprocessableEntity, MsgFormMissing},
		{"form invalid", checkout.ErrFormInvalid, http.StatusUnprocessableEntity, MsgFormInvalid},
		{"no stock", checkout.ErrInsufficientStock, http.StatusConflict, MsgNoStock},
		{"wrapped product failure", fmt.Errorf("check stock: %w", product.ErrUnavailable), http.StatusServiceUnavailable, product.LoadErrorMessage},
		{"provider failure", fmt.Errorf("start wompi payment: %w", gateway.ErrProvider), http.StatusBadGateway, MsgPaymentFailed},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Resolve(tc.err)

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}
