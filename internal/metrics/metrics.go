package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Submission outcomes recorded by OrderSubmitted.
const (
	ResultCreated     = "created"
	ResultInvalid     = "invalid"
	ResultEmptyCart   = "empty_cart"
	ResultPersistence = "persistence_error"
)

type Metrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Orders    *prometheus.CounterVec
	Sessions  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers storefront collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_submissions_total",
		Help:      "Order submissions by result.",
	}, []string{"result"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Browsing sessions currently holding a cart.",
	})

	reg.MustRegister(requests, latency, orders, sessions)
	return &Metrics{Requests: requests, LatencyMS: latency, Orders: orders, Sessions: sessions, gatherer: reg}
}

// NewNop returns metrics bound to a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) OrderSubmitted(result string) {
	m.Orders.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
