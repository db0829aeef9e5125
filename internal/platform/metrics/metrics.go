// Package metrics exposes business counters in Prometheus format.
//
// Request latency and store call metrics go through OpenTelemetry (see the
// telemetry package); the counters here describe what callers did with their
// todos and accounts.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const namespace = "todo_service"

var _ ports.DomainMetrics = (*Collector)(nil)

// Collector implements ports.DomainMetrics with Prometheus counters.
type Collector struct {
	mutations          *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	authFailures       *prometheus.CounterVec
	rateLimited        prometheus.Counter
}

// NewCollector creates a Collector and registers its counters with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "todo_mutations_total",
			Help:      "Successful todo mutations by operation.",
		}, []string{"operation"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Todo payloads rejected by validation, by operation.",
		}, []string{"operation"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected identities by reason.",
		}, []string{"reason"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests refused by the rate limiter.",
		}),
	}

	reg.MustRegister(
		c.mutations,
		c.validationFailures,
		c.authFailures,
		c.rateLimited,
	)

	return c
}

func (c *Collector) RecordTodoMutation(operation string) {
	c.mutations.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordValidationFailure(operation string) {
	c.validationFailures.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
