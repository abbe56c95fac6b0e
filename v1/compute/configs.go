package compute

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied by NewConfig when the corresponding variable is unset.
const (
	DefaultModel            = "gridmesh-embed-v1"
	DefaultDimensions       = 768
	DefaultPollIntervalMS   = 1500
	DefaultMaxPollAttempts  = 20
	DefaultBatchConcurrency = 4
	DefaultHTTPTimeoutS     = 30
)

// COMPUTE_ENDPOINT must point to the root of the Gridmesh gateway API (no
// /v1/tasks appended). The provider appends paths automatically, so callers
// only need to supply the host base URL.

type Config struct {
	// Gateway endpoint and auth
	Endpoint     string // Base URL of the Gridmesh gateway API
	ServiceToken string // Optional bearer token for the gateway

	// Request behavior
	DefaultModel     string // Model tag used when a call passes none
	Dimensions       int    // Fixed embedding vector length (default 768)
	PollIntervalMS   int    // Delay between status polls in milliseconds
	MaxPollAttempts  int    // Poll budget per task
	BatchConcurrency int    // Max in-flight items for batch requests
	HTTPTimeoutS     int    // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	return &Config{
		Endpoint:         os.Getenv("COMPUTE_ENDPOINT"),
		ServiceToken:     os.Getenv("COMPUTE_SERVICE_TOKEN"),
		DefaultModel:     envOrDefault("COMPUTE_DEFAULT_MODEL", DefaultModel),
		Dimensions:       envIntOrDefault("COMPUTE_EMBEDDING_DIMENSIONS", DefaultDimensions),
		PollIntervalMS:   envIntOrDefault("COMPUTE_POLL_INTERVAL_MS", DefaultPollIntervalMS),
		MaxPollAttempts:  envIntOrDefault("COMPUTE_MAX_POLL_ATTEMPTS", DefaultMaxPollAttempts),
		BatchConcurrency: envIntOrDefault("COMPUTE_BATCH_CONCURRENCY", DefaultBatchConcurrency),
		HTTPTimeoutS:     envIntOrDefault("COMPUTE_HTTP_TIMEOUT_SECONDS", DefaultHTTPTimeoutS),
	}
}

// Validate ensures required fields are present and knobs are sane.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("compute: missing COMPUTE_ENDPOINT")
	}
	if c.Dimensions <= 0 {
		return fmt.Errorf("compute: embedding dimensions must be positive, got %d", c.Dimensions)
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("compute: poll interval must be positive, got %d", c.PollIntervalMS)
	}
	if c.MaxPollAttempts <= 0 {
		return fmt.Errorf("compute: max poll attempts must be positive, got %d", c.MaxPollAttempts)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("compute: batch concurrency must be positive, got %d", c.BatchConcurrency)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
