package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exposing
// application metrics. It abstracts Prometheus metric operations with
// support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type. The compute
// and storage clients depend on it rather than on *Metrics so tests can
// substitute a fake.
type MetricsCollector interface {
	// Default metric methods

	// IncrementRequests increments the request counter with a given status label.
	IncrementRequests(status string)

	// RecordRequestDuration records the duration (in seconds) for an operation.
	RecordRequestDuration(start time.Time, operation string)

	// ObserveNetworkAvailability sets the availability gauge for an endpoint.
	ObserveNetworkAvailability(available bool, endpoint string)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
