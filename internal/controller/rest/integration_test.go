//go:build integration
// +build integration

package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"LuckyStore/internal/app"
	"LuckyStore/internal/controller/rest"
	"LuckyStore/internal/controller/rest/handlers"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/internal/external/epayco"
	"LuckyStore/internal/external/kafka"
	"LuckyStore/internal/messaging"
	product_repo "LuckyStore/internal/repo/product"
	"LuckyStore/internal/testinfra"
	"LuckyStore/pkg/health"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suite *testinfra.TestSuite

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	suite, err = testinfra.NewTestSuite(ctx, testinfra.SuiteOptions{WithPostgres: true, WithKafka: true})
	if err != nil {
		panic(err)
	}

	code := m.Run()

	suite.Cleanup(ctx)
	os.Exit(code)
}

func TestCheckoutFlow_SeededLottery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	products := product_repo.NewPgProductRepo(suite.Postgres.Pool, "")
	publisher := kafka.NewPublisher(suite.Kafka.Brokers, suite.Kafka.CheckoutTopic)
	defer publisher.Close()
	events := messaging.NewEventNotifier(publisher)

	gw := epayco.New(epayco.Config{
		PublicKey:   "pk_test",
		Sandbox:     true,
		Mode:        epayco.ModeForm,
		CheckoutURL: "https://checkout.epayco.co/payment",
	}, nil)

	selector := checkout.NewSelector(4)
	service := checkout.NewService(
		products,
		gw,
		checkout.ReferenceFunc(func() string { return "NUMERO-9-int" }),
		events,
		checkout.Options{StockCheck: true, BaseURL: "https://shop.example"},
	)
	router := rest.NewRouter(
		handlers.NewPageHandler(products, selector, "Tinta Fina"),
		handlers.NewCheckoutHandler(products, service, selector, "Tinta Fina"),
		handlers.NewResultHandler(payment.NewReconciler(events, gw), "Tinta Fina"),
		handlers.NewAPIHandler(products, selector),
		health.NewRegistry(health.NewPostgresChecker(suite.Postgres.Pool.Pool)),
	)
	engine, err := app.NewGinEngine()
	require.NoError(t, err)
	router.SetUp(engine)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	t.Run("should be ready with postgres up", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health/ready")
		require.NoError(t, err)
		readBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("should render the lottery stored in postgres", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		body := readBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "KTM 690 SMC R 2025")
		assert.Contains(t, body, "34819")
	})

	t.Run("should hand over to epayco and publish the transaction", func(t *testing.T) {
		resp, err := http.PostForm(srv.URL+"/checkout/ktm-690-smc-r-2025", validBilling())
		require.NoError(t, err)
		body := readBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `action="https://checkout.epayco.co/payment"`)
		assert.Contains(t, body, `value="NUMERO-9-int"`)

		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:  suite.Kafka.Brokers,
			Topic:    suite.Kafka.CheckoutTopic,
			GroupID:  "flow-" + suite.Kafka.CheckoutTopic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
		defer reader.Close()

		msg, err := reader.ReadMessage(ctx)
		require.NoError(t, err)

		var env messaging.Envelope
		require.NoError(t, json.Unmarshal(msg.Value, &env))
		assert.Equal(t, messaging.TypeTransactionCreated, env.Type)
		assert.NotEmpty(t, env.CorrelationID)

		var event checkout.TransactionCreated
		require.NoError(t, json.Unmarshal(env.Payload, &event))
		assert.Equal(t, "NUMERO-9-int", event.Reference)
		assert.Equal(t, "epayco", event.Gateway)
		assert.Equal(t, "ktm-690-smc-r-2025", event.ProductID)
		assert.Equal(t, 10, event.Quantity)
		assert.Equal(t, 16000.0, event.Amount)
	})

	t.Run("should refuse a purchase above the remaining stock", func(t *testing.T) {
		_, err := suite.Postgres.Pool.Pool.Exec(ctx,
			"UPDATE lotteries SET reserved = stock - 5 WHERE id = 'ktm-690-smc-r-2025'")
		require.NoError(t, err)

		resp, err := http.PostForm(srv.URL+"/checkout/ktm-690-smc-r-2025", validBilling())
		require.NoError(t, err)
		body := readBody(t, resp)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "No hay suficiente stock para realizar la compra")
	})
}
