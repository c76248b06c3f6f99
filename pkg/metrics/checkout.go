package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_attempts_total",
			Help:      "Checkout attempts by gateway and result",
		},
		[]string{"gateway", "result"},
	)

	PaymentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_outcomes_total",
			Help:      "Reconciled payment outcomes",
		},
		[]string{"gateway", "status", "verified"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka",
			Name:      "events_published_total",
			Help:      "Events written to Kafka",
		},
		[]string{"topic", "type", "status"},
	)
)

func init() {
	Registry.MustRegister(CheckoutAttempts, PaymentOutcomes, EventsPublished)
}
