// Package telemetry registers the Prometheus collectors exposed on /metrics.
// HTTP metrics are labelled by gin route template, not raw URL, to keep
// label cardinality bounded.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_auth_events_total",
			Help: "Authentication events by kind (signup, login, verify, invite, ...) and outcome.",
		},
		[]string{"event", "outcome"},
	)

	SalesRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sales_recorded_total",
			Help: "Number of sales recorded.",
		},
	)

	SalesRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sales_revenue_total",
			Help: "Sum of total_price over recorded sales.",
		},
	)

	OutboxEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_outbox_events_total",
			Help: "Outbox events handled by the publisher, by topic and result.",
		},
		[]string{"topic", "result"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_rate_limited_total",
			Help: "Requests rejected by a rate limiter.",
		},
		[]string{"limiter"},
	)
)

func RecordAuthEvent(event string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	AuthEventsTotal.WithLabelValues(event, outcome).Inc()
}
