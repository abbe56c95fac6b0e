package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementRequests increments the request counter with a given status label.
// Example: metrics.IncrementRequests("fallback")
func (m *Metrics) IncrementRequests(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// RecordRequestDuration records the duration (in seconds) for an operation.
// Example: defer metrics.RecordRequestDuration(time.Now(), "generate_embedding")
func (m *Metrics) RecordRequestDuration(start time.Time, operation string) {
	duration := time.Since(start).Seconds()
	m.requestDuration.WithLabelValues(operation).Observe(duration)
}

// ObserveNetworkAvailability sets the availability gauge for an endpoint.
// Example: metrics.ObserveNetworkAvailability(true, cfg.Endpoint)
func (m *Metrics) ObserveNetworkAvailability(available bool, endpoint string) {
	value := 0.0
	if available {
		value = 1.0
	}
	m.networkUpGauge.WithLabelValues(endpoint).Set(value)
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec for state monitoring.
// Used internally by NewMetrics.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
