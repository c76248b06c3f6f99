package rest

import (
	"net/http"

	"LuckyStore/internal/controller/rest/handlers"
	"LuckyStore/internal/controller/views"
	"LuckyStore/pkg/health"
	"LuckyStore/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	pages          *handlers.PageHandler
	checkout       *handlers.CheckoutHandler
	result         *handlers.ResultHandler
	api            *handlers.APIHandler
	healthRegistry *health.Registry
}

func NewRouter(
	pages *handlers.PageHandler,
	checkout *handlers.CheckoutHandler,
	result *handlers.ResultHandler,
	api *handlers.APIHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		pages:          pages,
		checkout:       checkout,
		result:         result,
		api:            api,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	// Prometheus metrics
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.StaticFS("/static", views.Static())

	// Pages
	engine.GET("/", r.pages.Home)
	engine.POST("/select", r.pages.Select)
	engine.GET("/terminos", r.pages.Terms)
	engine.GET("/checkout/:id", r.checkout.Show)
	engine.POST("/checkout/:id", r.checkout.Pay)
	engine.GET("/payment-result", r.result.Show)

	api := engine.Group("/api")
	{
		api.GET("/product", r.api.Product)
		api.GET("/quantity", r.api.Quantity)
		api.POST("/billing/validate", r.api.ValidateBilling)
		api.GET("/payment-confirmation", r.result.Confirm)
		api.POST("/payment-confirmation", r.result.Confirm)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
