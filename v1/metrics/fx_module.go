package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/gridmesh/std/v1/logger"
)

// FXModule wires the Prometheus metrics server into Fx.
//
// It provides *Metrics via NewMetrics and manages the /metrics HTTP server
// lifecycle. A metrics.Config must be available in the container; a
// *logger.Logger is used for startup/shutdown logs.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{
//	        Address:                 ":9090",
//	        ServiceName:             "compute-worker",
//	        EnableDefaultCollectors: true,
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the metrics HTTP server in the background
// on application start and shuts it down gracefully on stop. Invoked
// automatically by FXModule.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
