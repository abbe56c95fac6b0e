package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	// Gateway connection
	GatewayEndpoint string // host:port of the network's S3-compatible gateway
	AccessKey       string
	SecretKey       string
	Bucket          string
	UseSSL          bool

	// FallbackDir is the local directory mirroring objects when the gateway
	// is unreachable.
	FallbackDir string
}

// NewConfig reads from environment variables.
//
//   - STORAGE_GATEWAY_ENDPOINT: gateway host:port (required)
//   - STORAGE_ACCESS_KEY / STORAGE_SECRET_KEY: gateway credentials
//   - STORAGE_BUCKET: bucket holding this service's objects (required)
//   - STORAGE_USE_SSL: "true" enables TLS towards the gateway
//   - STORAGE_FALLBACK_DIR: local mirror directory
//     (default <tmp>/gridmesh-storage-fallback)
func NewConfig() *Config {
	fallbackDir := os.Getenv("STORAGE_FALLBACK_DIR")
	if fallbackDir == "" {
		fallbackDir = filepath.Join(os.TempDir(), "gridmesh-storage-fallback")
	}

	return &Config{
		GatewayEndpoint: os.Getenv("STORAGE_GATEWAY_ENDPOINT"),
		AccessKey:       os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey:       os.Getenv("STORAGE_SECRET_KEY"),
		Bucket:          os.Getenv("STORAGE_BUCKET"),
		UseSSL:          os.Getenv("STORAGE_USE_SSL") == "true",
		FallbackDir:     fallbackDir,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.GatewayEndpoint == "" {
		return fmt.Errorf("storage: missing STORAGE_GATEWAY_ENDPOINT")
	}
	if c.Bucket == "" {
		return fmt.Errorf("storage: missing STORAGE_BUCKET")
	}
	return nil
}
