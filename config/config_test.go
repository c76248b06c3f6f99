package config

import (
	"testing"
	"time"

	"LuckyStore/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("EPAYCO_PUBLIC_KEY", "pk_test")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, 4, cfg.MinPurchaseQuantity)
		assert.Equal(t, "NUMERO", cfg.ReferencePrefix)
		assert.Equal(t, 15*time.Second, cfg.HTTPClientTimeout)
		assert.Equal(t, SourceMock, cfg.ProductSource)
		assert.Equal(t, gateway.Epayco, cfg.Gateway())
		assert.Equal(t, "widget", cfg.Epayco.Mode)
		assert.True(t, cfg.StockCheckEnabled)
		assert.Empty(t, cfg.KafkaBrokers)
	})

	t.Run("should read nested gateway settings", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY", "wompi")
		t.Setenv("WOMPI_PUBLIC_KEY", "pub_test_1")
		t.Setenv("WOMPI_API_URL", "https://wompi.test/v1")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, gateway.Wompi, cfg.Gateway())
		assert.Equal(t, "pub_test_1", cfg.Wompi.PublicKey)
		assert.Equal(t, "https://wompi.test/v1", cfg.Wompi.APIURL)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	})

	t.Run("should reject missing gateway credentials", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY", "mercadopago")

		_, err := New()

		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "MERCADOPAGO_ACCESS_TOKEN")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			LogFormat:           "json",
			MinPurchaseQuantity: 4,
			ProductSource:       SourceMock,
			PaymentGateway:      "epayco",
			Epayco:              Epayco{PublicKey: "pk", Mode: "widget"},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown gateway", mutate: func(c *Config) { c.PaymentGateway = "paypal" }, wantErr: "PAYMENT_GATEWAY"},
		{name: "unknown source", mutate: func(c *Config) { c.ProductSource = "redis" }, wantErr: "PRODUCT_SOURCE"},
		{name: "http source without url", mutate: func(c *Config) { c.ProductSource = SourceHTTP }, wantErr: "LOTTERY_API_URL"},
		{name: "postgres source without url", mutate: func(c *Config) { c.ProductSource = SourcePostgres }, wantErr: "PG_URL"},
		{name: "bad epayco mode", mutate: func(c *Config) { c.Epayco.Mode = "popup" }, wantErr: "EPAYCO_MODE"},
		{name: "zero minimum", mutate: func(c *Config) { c.MinPurchaseQuantity = 0 }, wantErr: "MIN_PURCHASE_QUANTITY"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
