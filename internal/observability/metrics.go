// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"pricerelay/internal/adapters"
	"pricerelay/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "pricerelay"

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Resolution metrics
	ResultCacheLookups *prometheus.CounterVec
	PricesResolved     *prometheus.CounterVec

	// Upstream metrics
	ProviderRequests *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec

	// Catalog metrics
	CatalogRefreshes *prometheus.CounterVec
	CatalogSize      prometheus.Gauge

	// Rate limiter metrics
	RequestsRateLimited prometheus.Counter
	LimiterBuckets      prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ResultCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "result_cache_lookups_total",
			Help:      "Result cache lookups by outcome",
		}, []string{"result"}),
		PricesResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "prices_resolved_total",
			Help:      "Resolved price requests by category and status",
		}, []string{"category", "status"}),

		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Upstream provider requests by provider and HTTP status code",
		}, []string{"provider", "code"}),
		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Upstream provider request latency in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),

		CatalogRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "refreshes_total",
			Help:      "Crypto catalog refreshes by status",
		}, []string{"status"}),
		CatalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "symbols",
			Help:      "Number of symbols in the current crypto catalog",
		}),

		RequestsRateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "rejected_total",
			Help:      "Requests rejected by the rate limiter",
		}),
		LimiterBuckets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "buckets",
			Help:      "Client buckets left after the last sweep",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ResultCacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordResolved(category string, err error) {
	if m == nil {
		return
	}
	if category == "" {
		category = "unknown"
	}
	m.PricesResolved.WithLabelValues(category, outcome(err)).Inc()
}

func (m *Metrics) RecordCatalogRefresh(size int, err error) {
	if m == nil {
		return
	}
	m.CatalogRefreshes.WithLabelValues(status(err)).Inc()
	if err == nil {
		m.CatalogSize.Set(float64(size))
	}
}

func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.RequestsRateLimited.Inc()
}

func (m *Metrics) RecordLimiterBuckets(n int) {
	if m == nil {
		return
	}
	m.LimiterBuckets.Set(float64(n))
}

// InstrumentClient wraps an upstream HTTP client so every call is counted and timed under provider.
func (m *Metrics) InstrumentClient(provider string, next adapters.HTTPClient) adapters.HTTPClient {
	if m == nil {
		return next
	}
	return &instrumentedClient{next: next, provider: provider, metrics: m}
}

type instrumentedClient struct {
	next     adapters.HTTPClient
	provider string
	metrics  *Metrics
}

func (c *instrumentedClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.next.Do(req)
	c.metrics.ProviderLatency.WithLabelValues(c.provider).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.ProviderRequests.WithLabelValues(c.provider, code).Inc()
	return resp, err
}

// outcome labels a resolution by error kind, e.g. "upstream_unavailable".
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := domain.KindOf(err); kind != nil {
		return strings.ReplaceAll(kind.Error(), " ", "_")
	}
	return "error"
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
