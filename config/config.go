package config

import (
	"errors"
	"fmt"
	"time"

	"LuckyStore/internal/domain/gateway"

	"github.com/caarlos0/env/v11"
)

const (
	SourceHTTP     = "http"
	SourceMock     = "mock"
	SourcePostgres = "postgres"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Port          int    `env:"PORT" envDefault:"3000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	StoreName     string `env:"STORE_NAME" envDefault:"Tinta Fina"`

	MinPurchaseQuantity int           `env:"MIN_PURCHASE_QUANTITY" envDefault:"4"`
	ReferencePrefix     string        `env:"REFERENCE_PREFIX" envDefault:"NUMERO"`
	StockCheckEnabled   bool          `env:"STOCK_CHECK_ENABLED" envDefault:"true"`
	HTTPClientTimeout   time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"15s"`

	// Product source: "http" (lottery API), "mock" (demo product) or "postgres".
	ProductSource string `env:"PRODUCT_SOURCE" envDefault:"mock"`
	LotteryAPIURL string `env:"LOTTERY_API_URL"`
	LotteryID     string `env:"LOTTERY_ID"`
	PgURL         string `env:"PG_URL"`
	PgPoolMax     int    `env:"PG_POOL_MAX" envDefault:"10"`

	PaymentGateway string `env:"PAYMENT_GATEWAY" envDefault:"epayco"`
	GatewaySandbox bool   `env:"GATEWAY_SANDBOX" envDefault:"true"`

	Epayco      Epayco      `envPrefix:"EPAYCO_"`
	MercadoPago MercadoPago `envPrefix:"MERCADOPAGO_"`
	Wompi       Wompi       `envPrefix:"WOMPI_"`

	// Checkout events are published only when brokers are configured.
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaCheckoutTopic string   `env:"KAFKA_CHECKOUT_TOPIC" envDefault:"storefront.checkout"`
}

type Epayco struct {
	PublicKey     string `env:"PUBLIC_KEY"`
	Mode          string `env:"MODE" envDefault:"widget"`
	CheckoutURL   string `env:"CHECKOUT_URL" envDefault:"https://checkout.epayco.co/payment"`
	ScriptURL     string `env:"SCRIPT_URL" envDefault:"https://checkout.epayco.co/checkout.js"`
	ValidationURL string `env:"VALIDATION_URL" envDefault:"https://secure.epayco.co/validation/v1/reference"`
}

type MercadoPago struct {
	AccessToken         string `env:"ACCESS_TOKEN"`
	APIURL              string `env:"API_URL" envDefault:"https://api.mercadopago.com"`
	StatementDescriptor string `env:"STATEMENT_DESCRIPTOR" envDefault:"TINTAFINA"`
}

type Wompi struct {
	PublicKey  string `env:"PUBLIC_KEY"`
	PrivateKey string `env:"PRIVATE_KEY"`
	APIURL     string `env:"API_URL" envDefault:"https://sandbox.wompi.co/v1"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects combinations that would only fail later, at the first
// request: missing credentials for the selected gateway or product source.
func (c Config) Validate() error {
	var errs []error

	if c.MinPurchaseQuantity < 1 {
		errs = append(errs, fmt.Errorf("MIN_PURCHASE_QUANTITY must be positive, got %d", c.MinPurchaseQuantity))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}

	switch c.ProductSource {
	case SourceMock:
	case SourceHTTP:
		if c.LotteryAPIURL == "" {
			errs = append(errs, errors.New("LOTTERY_API_URL is required for PRODUCT_SOURCE=http"))
		}
	case SourcePostgres:
		if c.PgURL == "" {
			errs = append(errs, errors.New("PG_URL is required for PRODUCT_SOURCE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PRODUCT_SOURCE %q", c.ProductSource))
	}

	name, err := gateway.ParseName(c.PaymentGateway)
	if err != nil {
		errs = append(errs, fmt.Errorf("PAYMENT_GATEWAY: %w", err))
	}
	switch name {
	case gateway.Epayco:
		if c.Epayco.PublicKey == "" {
			errs = append(errs, errors.New("EPAYCO_PUBLIC_KEY is required"))
		}
		if c.Epayco.Mode != "widget" && c.Epayco.Mode != "form" {
			errs = append(errs, fmt.Errorf("EPAYCO_MODE must be widget or form, got %q", c.Epayco.Mode))
		}
	case gateway.MercadoPago:
		if c.MercadoPago.AccessToken == "" {
			errs = append(errs, errors.New("MERCADOPAGO_ACCESS_TOKEN is required"))
		}
	case gateway.Wompi:
		if c.Wompi.PublicKey == "" {
			errs = append(errs, errors.New("WOMPI_PUBLIC_KEY is required"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Gateway is the parsed PAYMENT_GATEWAY. Only valid after Validate.
func (c Config) Gateway() gateway.Name {
	name, _ := gateway.ParseName(c.PaymentGateway)
	return name
}
