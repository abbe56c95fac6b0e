package logger

import "os"

// LogLevel names the minimum severity the logger emits.
type LogLevel string

const (
	Debug   LogLevel = "debug"
	Info    LogLevel = "info"
	Warning LogLevel = "warning"
	Error   LogLevel = "error"
)

type Config struct {
	// Level is the minimum severity to emit. Unknown values fall back to Info.
	Level LogLevel

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string

	// EnableTracing makes the *WithContext methods attach trace/span ids
	// extracted from the context.
	EnableTracing bool
}

// NewConfig reads from environment variables.
//
//   - LOGGER_LEVEL: minimum severity (default "info")
//   - SERVICE_NAME: constant service field
//   - LOGGER_ENABLE_TRACING: "true" enables trace/span id extraction
func NewConfig() Config {
	level := LogLevel(os.Getenv("LOGGER_LEVEL"))
	if level == "" {
		level = Info
	}

	return Config{
		Level:         level,
		ServiceName:   os.Getenv("SERVICE_NAME"),
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
