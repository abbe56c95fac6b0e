// Package logger provides the structured logging used across the Gridmesh
// client packages.
//
// It wraps Uber's Zap with a deliberately small surface: a message, an
// optional error, and optional field maps. Entries are JSON on stderr with a
// service label and process id attached to every line.
//
// # Direct usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "compute-worker",
//	})
//
//	log.Info("task submitted", nil, map[string]interface{}{
//	    "task_id": taskID,
//	    "model":   model,
//	})
//
// # Tracing integration
//
// With Config.EnableTracing set, the *WithContext variants extract the
// OpenTelemetry trace and span ids from the context and attach them as
// trace_id/span_id fields:
//
//	log.InfoWithContext(ctx, "poll finished", nil, nil)
//
// # Fx
//
// logger.FXModule provides *Logger and registers a Sync-on-stop lifecycle
// hook. It requires a logger.Config in the container (fx.Supply or a
// provider), typically built from the environment via NewConfig.
package logger
