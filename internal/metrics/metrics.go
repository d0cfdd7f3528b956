// Package metrics exposes the prometheus collectors for the clock service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the clock service collectors.
type Metrics struct {
	registry *prometheus.Registry

	Renders          *prometheus.CounterVec
	RefreshPasses    prometheus.Counter
	ColumnsRefreshed prometheus.Counter
	RefreshDuration  prometheus.Histogram
	FormatFailures   *prometheus.CounterVec
	Sessions         prometheus.Gauge
	SessionsEvicted  prometheus.Counter
}

// New registers the collectors on a dedicated registry under namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Clock boards rendered, by output format.",
		}, []string{"format"}),
		RefreshPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_passes_total",
			Help:      "Refresh passes run across all boards.",
		}),
		ColumnsRefreshed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "columns_refreshed_total",
			Help:      "Clock columns updated in place.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Time spent in a refresh pass.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		FormatFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "format_failures_total",
			Help:      "Formatting failures replaced by placeholders, by kind.",
		}, []string{"kind"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Live clock boards.",
		}),
		SessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Clock boards stopped to make room for new city lists.",
		}),
	}

	reg.MustRegister(
		m.Renders,
		m.RefreshPasses,
		m.ColumnsRefreshed,
		m.RefreshDuration,
		m.FormatFailures,
		m.Sessions,
		m.SessionsEvicted,
	)
	return m
}

// ObserveRefresh records a refresh pass.
func (m *Metrics) ObserveRefresh(updated int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RefreshPasses.Inc()
	m.ColumnsRefreshed.Add(float64(updated))
	m.RefreshDuration.Observe(elapsed.Seconds())
}

// ObserveFormatFailure counts a swallowed formatting failure.
func (m *Metrics) ObserveFormatFailure(kind string) {
	if m == nil {
		return
	}
	m.FormatFailures.WithLabelValues(kind).Inc()
}

// ObserveRender counts a rendered response.
func (m *Metrics) ObserveRender(format string) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(format).Inc()
}

// SetSessions records the number of live boards.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.Sessions.Set(float64(n))
}

// ObserveEviction counts a board stopped by the session cache.
func (m *Metrics) ObserveEviction() {
	if m == nil {
		return
	}
	m.SessionsEvicted.Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
