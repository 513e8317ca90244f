// Package metrics owns the gateway's Prometheus instrumentation.
//
// All collectors live on a dedicated registry rather than the global default
// one so tests can construct isolated instances. The registry is exposed over
// HTTP via [Metrics.Handler], typically on a separate listen address.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the gateway's collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal *prometheus.CounterVec
}

// New constructs a Metrics instance with a fresh registry, the standard Go
// runtime collectors, and the gateway's request counter.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_http_requests_total",
		Help: "Inbound HTTP requests handled by the gateway, by route pattern and status code.",
	}, []string{"route", "status"})
	registry.MustRegister(requestsTotal)

	return &Metrics{
		registry:      registry,
		requestsTotal: requestsTotal,
	}
}

// ObserveRequest records one completed inbound request for the given chi
// route pattern and response status.
func (m *Metrics) ObserveRequest(route string, status int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler returns the HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
