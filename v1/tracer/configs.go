package tracer

import "os"

type Config struct {
	// Endpoint is the OTLP/HTTP collector endpoint (host:port, no scheme).
	Endpoint string

	// ServiceName identifies this service in exported traces.
	ServiceName string

	// Insecure disables TLS towards the collector. Typical for in-cluster
	// collectors.
	Insecure bool
}

// NewConfig reads from environment variables.
//
//   - TRACING_ENDPOINT: OTLP/HTTP collector endpoint (default "localhost:4318")
//   - SERVICE_NAME: service name attached to exported spans
//   - TRACING_INSECURE: "true" disables TLS
func NewConfig() Config {
	endpoint := os.Getenv("TRACING_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:4318"
	}

	return Config{
		Endpoint:    endpoint,
		ServiceName: os.Getenv("SERVICE_NAME"),
		Insecure:    os.Getenv("TRACING_INSECURE") == "true",
	}
}
