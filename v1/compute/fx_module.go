package compute

import (
	"context"

	"go.uber.org/fx"

	"github.com/gridmesh/std/v1/logger"
	"github.com/gridmesh/std/v1/metrics"
)

// FXModule wires the compute client into Fx.
//
// It provides:
//   - *Config                (NewConfig)
//   - *Client                (newClientFromContainer)
//   - Lifecycle hook         (RegisterComputeLifecycle)
//
// The client is constructed with the container's logger and metrics wired
// in, so the logger and metrics modules must be part of the application.
var FXModule = fx.Module(
	"compute",

	fx.Provide(
		NewConfig,              // -> *Config
		newClientFromContainer, // -> *Client
	),

	fx.Invoke(RegisterComputeLifecycle),
)

// newClientFromContainer builds the client from container-managed
// dependencies. Direct (non-Fx) users call NewClient with options instead.
func newClientFromContainer(cfg *Config, log *logger.Logger, m *metrics.Metrics) (*Client, error) {
	return NewClient(cfg, WithLogger(log), WithMetrics(m))
}

// RegisterComputeLifecycle ensures the Client (and its provider) release
// their HTTP resources on application shutdown.
func RegisterComputeLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
