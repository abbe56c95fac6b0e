// Package metrics exposes Prometheus metrics for the Gridmesh client
// packages.
//
// Each service gets its own isolated registry wrapped with a constant
// service label, a /metrics HTTP server, and three built-in metrics:
//
//   - requests_total{status}: processed requests by serving status
//     ("success", "fallback", "error")
//   - request_duration_seconds{operation}: operation latency histogram
//   - network_available{endpoint}: 1/0 result of the last availability probe
//
// Additional metrics can be registered at runtime through the CreateCounter,
// CreateHistogram, and CreateGauge factories.
//
// The compute and storage clients accept a MetricsCollector so their
// operations feed these metrics without the packages importing each other's
// internals; tests substitute a fake implementation.
//
// metrics.FXModule provides *Metrics and runs the HTTP server under the Fx
// lifecycle.
package metrics
