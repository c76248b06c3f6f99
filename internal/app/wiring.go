package app

import (
	"context"
	"fmt"
	"net/http"

	"LuckyStore/config"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/internal/domain/product"
	"LuckyStore/internal/external/epayco"
	"LuckyStore/internal/external/kafka"
	"LuckyStore/internal/external/lottery"
	"LuckyStore/internal/external/mercadopago"
	"LuckyStore/internal/external/wompi"
	"LuckyStore/internal/messaging"
	product_repo "LuckyStore/internal/repo/product"
	"LuckyStore/pkg/health"
	"LuckyStore/pkg/postgres"
)

// newProductSource picks the catalog for PRODUCT_SOURCE. The returned
// func releases whatever the source holds open.
func newProductSource(ctx context.Context, cfg config.Config, client *http.Client, checks *health.Registry) (product.Source, func(), error) {
	switch cfg.ProductSource {
	case config.SourceHTTP:
		checks.Register(health.NewHTTPChecker("lottery_api", cfg.LotteryAPIURL, client))
		return lottery.New(cfg.LotteryAPIURL, client), func() {}, nil

	case config.SourcePostgres:
		if err := ApplyMigrations(ctx, cfg.PgURL, MIGRATION_FS); err != nil {
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		checks.Register(health.NewPostgresChecker(pg.Pool))
		return product_repo.NewPgProductRepo(pg, cfg.LotteryID), pg.Close, nil

	default:
		return product_repo.NewMemorySource(), func() {}, nil
	}
}

// gatewayClient is what every provider client implements.
type gatewayClient interface {
	gateway.Adapter
	gateway.Verifier
}

func newGateway(cfg config.Config, client *http.Client) (gatewayClient, error) {
	switch cfg.Gateway() {
	case gateway.Epayco:
		return epayco.New(epayco.Config{
			PublicKey:     cfg.Epayco.PublicKey,
			Sandbox:       cfg.GatewaySandbox,
			Mode:          epayco.Mode(cfg.Epayco.Mode),
			CheckoutURL:   cfg.Epayco.CheckoutURL,
			ScriptURL:     cfg.Epayco.ScriptURL,
			ValidationURL: cfg.Epayco.ValidationURL,
			MerchantName:  cfg.StoreName,
		}, client), nil
	case gateway.MercadoPago:
		return mercadopago.New(mercadopago.Config{
			AccessToken:         cfg.MercadoPago.AccessToken,
			APIURL:              cfg.MercadoPago.APIURL,
			StatementDescriptor: cfg.MercadoPago.StatementDescriptor,
			Sandbox:             cfg.GatewaySandbox,
		}, client), nil
	case gateway.Wompi:
		return wompi.New(wompi.Config{
			PublicKey:  cfg.Wompi.PublicKey,
			PrivateKey: cfg.Wompi.PrivateKey,
			APIURL:     cfg.Wompi.APIURL,
		}, client), nil
	default:
		return nil, fmt.Errorf("%w: %q", gateway.ErrUnknownGateway, cfg.PaymentGateway)
	}
}

type notifiers struct {
	checkout checkout.Notifier
	payment  payment.Notifier
	close    func() error
}

// newNotifiers publishes checkout and payment events to Kafka when brokers
// are configured, and drops them otherwise.
func newNotifiers(cfg config.Config, checks *health.Registry) notifiers {
	if len(cfg.KafkaBrokers) == 0 {
		return notifiers{checkout: checkout.NopNotifier{}, close: func() error { return nil }}
	}

	publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaCheckoutTopic)
	checks.Register(health.NewKafkaChecker(cfg.KafkaBrokers))

	events := messaging.NewEventNotifier(publisher)
	return notifiers{checkout: events, payment: events, close: publisher.Close}
}
