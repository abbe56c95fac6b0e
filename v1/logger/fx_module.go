package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into Fx.
//
// It provides *Logger via NewLoggerClient and registers a shutdown hook that
// flushes buffered entries. A logger.Config must be available in the
// dependency injection container.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info, ServiceName: "my-service"}),
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the Zap logger on application shutdown so
// no buffered entries are lost. Invoked automatically by FXModule.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
