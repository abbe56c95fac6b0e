package storage

import (
	"go.uber.org/fx"

	"github.com/gridmesh/std/v1/logger"
)

// FXModule wires the storage client into Fx.
//
// It provides:
//   - *Config                (NewConfig)
//   - *Client                (newClientFromContainer)
//
// The client holds no connections of its own (minio pools per request), so
// no lifecycle hook is needed.
var FXModule = fx.Module(
	"storage",

	fx.Provide(
		NewConfig,              // -> *Config
		newClientFromContainer, // -> *Client
	),
)

// newClientFromContainer builds the client from container-managed
// dependencies. Direct (non-Fx) users call NewClient with options instead.
func newClientFromContainer(cfg *Config, log *logger.Logger) (*Client, error) {
	return NewClient(cfg, WithLogger(log))
}
