// Package metrics holds the Prometheus metrics of the legacy registry adapter.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"mylegacyregistry/domain"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// OperationUnrouted labels requests that did not match any v1 path.
	OperationUnrouted = "unrouted"
	// StatusAbandoned labels requests whose client went away before a response was written.
	StatusAbandoned = "abandoned"

	refreshResultSuccess = "success"
	refreshResultError   = "error"
)

// Metrics holds all Prometheus metrics of the adapter.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Registry view metrics
	RefreshesTotal    *prometheus.CounterVec
	RegistryInstances prometheus.Gauge
	DeltaInstances    prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry creates a new Metrics instance with a custom registry.
func NewWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legacy_registry_http_requests_total",
				Help: "Total number of v1 query requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "legacy_registry_http_request_duration_seconds",
				Help:    "v1 query latencies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RefreshesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legacy_registry_refreshes_total",
				Help: "Total number of registry snapshot refreshes",
			},
			[]string{"result"},
		),
		RegistryInstances: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "legacy_registry_instances",
				Help: "Number of instances in the current snapshot",
			},
		),
		DeltaInstances: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "legacy_registry_delta_instances",
				Help: "Number of instances in the current delta",
			},
		),
		gatherer: gatherer,
	}
}

// ObserveRefresh records a registry view refresh. A failed refresh keeps the gauges.
func (m *Metrics) ObserveRefresh(instances int, changes int, err error) {
	if err != nil {
		m.RefreshesTotal.WithLabelValues(refreshResultError).Inc()
		return
	}
	m.RefreshesTotal.WithLabelValues(refreshResultSuccess).Inc()
	m.RegistryInstances.Set(float64(instances))
	m.DeltaInstances.Set(float64(changes))
}

// Middleware counts and times requests by operation and response status.
// Handler errors are rendered here so the status is known when the request is recorded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			operation := OperationUnrouted
			if op, ok := c.Get(service.ContextKeyOperation).(domain.Operation); ok {
				operation = string(op)
			}
			status := StatusAbandoned
			if c.Response().Committed {
				status = strconv.Itoa(c.Response().Status)
			}

			m.RequestsTotal.WithLabelValues(operation, status).Inc()
			m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler returns the Prometheus metrics HTTP handler for the registry the metrics were created with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
