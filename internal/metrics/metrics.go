package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors groups the prometheus collectors of the Mollie client and the webhook server.
type Collectors struct {
	// RequestsTotal counts Mollie API requests by HTTP method and response status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes the duration of Mollie API requests by HTTP method.
	RequestDuration *prometheus.HistogramVec

	// WebhooksTotal counts processed payment webhooks by result.
	WebhooksTotal *prometheus.CounterVec
}

// New creates the collectors and registers them in reg. A nil reg creates unregistered collectors.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mollie_api_requests_total",
				Help: "The total number of requests sent to the Mollie API",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mollie_api_request_duration_seconds",
				Help:    "Duration of requests sent to the Mollie API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		WebhooksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mollie_webhooks_total",
				Help: "The total number of payment webhooks received",
			},
			[]string{"result"},
		),
	}
}
