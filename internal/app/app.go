package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"LuckyStore/config"
	"LuckyStore/internal/controller/rest"
	"LuckyStore/internal/controller/rest/handlers"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/payment"
	"LuckyStore/pkg/health"
	"LuckyStore/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	healthRegistry := health.NewRegistry()

	products, closeProducts, err := newProductSource(ctx, cfg, httpClient, healthRegistry)
	if err != nil {
		return fmt.Errorf("app - Run - newProductSource: %w", err)
	}
	defer closeProducts()

	gw, err := newGateway(cfg, httpClient)
	if err != nil {
		return fmt.Errorf("app - Run - newGateway: %w", err)
	}

	events := newNotifiers(cfg, healthRegistry)
	defer func() {
		if err := events.close(); err != nil {
			slog.Error("close event publisher", "error", err)
		}
	}()

	// Services
	selector := checkout.NewSelector(cfg.MinPurchaseQuantity)
	checkoutService := checkout.NewService(
		products,
		gw,
		gateway.NewReferenceGenerator(cfg.ReferencePrefix),
		events.checkout,
		checkout.Options{StockCheck: cfg.StockCheckEnabled, BaseURL: cfg.PublicBaseURL},
	)
	// Only the active gateway can verify; results of the others fall
	// back to their return parameters.
	reconciler := payment.NewReconciler(events.payment, gw)

	// Handlers
	router := rest.NewRouter(
		handlers.NewPageHandler(products, selector, cfg.StoreName),
		handlers.NewCheckoutHandler(products, checkoutService, selector, cfg.StoreName),
		handlers.NewResultHandler(reconciler, cfg.StoreName),
		handlers.NewAPIHandler(products, selector),
		healthRegistry,
	)

	engine, err := NewGinEngine()
	if err != nil {
		return fmt.Errorf("app - Run - NewGinEngine: %w", err)
	}
	router.SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting storefront",
			"port", cfg.Port,
			"gateway", gw.Name(),
			"product_source", cfg.ProductSource,
			"sandbox", cfg.GatewaySandbox,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down storefront gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
