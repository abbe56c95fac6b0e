package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around Uber's Zap logger.
//
// It exposes the small structured-logging surface the Gridmesh client
// packages need (message + optional error + optional field maps) while
// keeping the underlying zap.Logger reachable for anything else.
type Logger struct {
	// Zap is the underlying zap.Logger instance. Exposed for direct access
	// when the wrapper methods are not enough; most logging should go
	// through them.
	Zap *zap.Logger

	// tracingEnabled makes the *WithContext methods attach trace/span ids
	// extracted from the context.
	tracingEnabled bool
}

// NewLoggerClient builds a configured *Logger from Config.
//
// The logger emits JSON to stderr with ISO8601 timestamps, capital level
// names, caller information, and the process id plus cfg.ServiceName as
// initial fields. If the zap build fails (which only happens on programming
// errors in the config literal below), the process exits.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            zapLogger,
		tracingEnabled: cfg.EnableTracing,
	}
}
