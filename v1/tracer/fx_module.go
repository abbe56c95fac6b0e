package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule configures distributed tracing for the application.
//
// It provides the tracer client through NewClient and registers shutdown
// hooks so pending spans are flushed when the application terminates.
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Supply(tracer.NewConfig()),
//	    // other modules...
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the
// FX lifecycle, making sure the provider is flushed and closed on
// termination. Invoked automatically by FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.provider == nil {
				log.Println("INFO: tracer provider is nil, skipping shutdown")
				return nil
			}
			return tracer.Shutdown(ctx)
		},
	})
}
