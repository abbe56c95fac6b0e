package metrics

import "os"

type Config struct {
	// Address is the listen address of the /metrics HTTP server, e.g. ":9090".
	Address string

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers the Go runtime, process, and build
	// info collectors in addition to the package's own metrics.
	EnableDefaultCollectors bool
}

// NewConfig reads from environment variables.
//
//   - METRICS_ADDRESS: listen address (default ":9090")
//   - SERVICE_NAME: constant service label
//   - METRICS_DEFAULT_COLLECTORS: "false" disables the runtime collectors
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = ":9090"
	}

	return Config{
		Address:                 address,
		ServiceName:             os.Getenv("SERVICE_NAME"),
		EnableDefaultCollectors: os.Getenv("METRICS_DEFAULT_COLLECTORS") != "false",
	}
}
