package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server exposing
// it at /metrics.
//
// Each service keeps its own isolated registry so metric names never collide
// when several services share a process.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry all metrics are registered in.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	networkUpGauge  *prometheus.GaugeVec
}

// NewMetrics builds a Metrics instance from Config.
//
// It creates a dedicated registry, wraps it with a constant service label,
// registers the package's built-in metrics (request counter by serving path,
// operation latency histogram, network availability gauge), optionally adds
// the standard Go/process/build-info collectors, and prepares the /metrics
// HTTP server. Starting and stopping the server is the caller's (or the Fx
// module's) job.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "compute-worker",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed requests by serving status", []string{"status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of client operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.networkUpGauge = createGaugeVec("network_available", "Whether the remote network endpoint answered the last probe (1) or not (0)", []string{"endpoint"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.networkUpGauge,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
