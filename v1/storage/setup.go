package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gridmesh/std/v1/logger"
	"github.com/gridmesh/std/v1/observability"
)

// Location identifies which path served a storage operation.
type Location string

const (
	// LocationNetwork means the object went through the gateway.
	LocationNetwork Location = "network"

	// LocationLocal means the local fallback mirror served the operation.
	// Callers see degraded durability: the object lives only on this host
	// until the gateway comes back.
	LocationLocal Location = "local"
)

// Client wraps the network's S3-compatible storage gateway with a
// local-disk fallback mirror.
//
// Upload and Download try the gateway first; on transport-level failure they
// fall back to FallbackDir and report LocationLocal so callers can tell
// which path served them. Invalid input (an empty key) surfaces directly and
// never touches either path.
type Client struct {
	mc  *minio.Client
	cfg *Config

	logger   *logger.Logger
	observer observability.Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger attaches a structured logger for fallback events.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// WithObserver attaches an operation observer.
func WithObserver(obs observability.Observer) Option {
	return func(c *Client) { c.observer = obs }
}

// NewClient constructs a Client from Config. The fallback directory is
// created eagerly so a degraded first request cannot also fail on a missing
// directory.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("storage: invalid config: %w", err)
	}

	// MaxRetries 1: an unreachable gateway should reach the local fallback
	// immediately instead of sitting in minio's retry backoff.
	mc, err := minio.New(cfg.GatewayEndpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:     cfg.UseSSL,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create gateway client: %w", err)
	}

	if err := os.MkdirAll(cfg.FallbackDir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: failed to create fallback dir: %w", err)
	}

	c := &Client{mc: mc, cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Upload stores an object under key, returning which path served it.
//
// The payload is buffered in memory so the fallback path can reuse it after
// a failed gateway attempt; objects in this system are small (manifests,
// embeddings, metadata blobs).
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader) (Location, error) {
	start := time.Now()

	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("storage: read payload: %w", err)
	}

	_, err = c.mc.PutObject(ctx, c.cfg.Bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{})
	if err == nil {
		c.observeOperation("upload", key, time.Since(start), nil, int64(len(payload)), map[string]interface{}{
			"location": LocationNetwork,
		})
		return LocationNetwork, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if c.logger != nil {
		c.logger.Warn("gateway upload failed, mirroring to local fallback", err, map[string]interface{}{
			"key":    key,
			"bucket": c.cfg.Bucket,
		})
	}

	if werr := os.WriteFile(c.fallbackPath(key), payload, 0o600); werr != nil {
		return "", fmt.Errorf("storage: fallback write for %q: %w", key, werr)
	}

	c.observeOperation("upload", key, time.Since(start), err, int64(len(payload)), map[string]interface{}{
		"location": LocationLocal,
	})
	return LocationLocal, nil
}

// Download retrieves an object by key, returning which path served it.
// If the gateway cannot serve the object and the local mirror has no copy,
// Download fails with ErrNotFound.
func (c *Client) Download(ctx context.Context, key string) ([]byte, Location, error) {
	start := time.Now()

	if strings.TrimSpace(key) == "" {
		return nil, "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	data, err := c.gatewayGet(ctx, key)
	if err == nil {
		c.observeOperation("download", key, time.Since(start), nil, int64(len(data)), map[string]interface{}{
			"location": LocationNetwork,
		})
		return data, LocationNetwork, nil
	}

	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	data, ferr := os.ReadFile(c.fallbackPath(key))
	if ferr != nil {
		if errors.Is(ferr, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, "", fmt.Errorf("storage: fallback read for %q: %w", key, ferr)
	}

	c.observeOperation("download", key, time.Since(start), err, int64(len(data)), map[string]interface{}{
		"location": LocationLocal,
	})
	return data, LocationLocal, nil
}

// Delete removes an object from the gateway and the local mirror. A missing
// object on either path is not an error; delete is idempotent.
func (c *Client) Delete(ctx context.Context, key string) error {
	start := time.Now()

	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	gerr := c.mc.RemoveObject(ctx, c.cfg.Bucket, key, minio.RemoveObjectOptions{})

	if err := os.Remove(c.fallbackPath(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: fallback delete for %q: %w", key, err)
	}

	c.observeOperation("delete", key, time.Since(start), gerr, 0, nil)
	return nil
}

// gatewayGet reads the whole object from the gateway. minio's GetObject is
// lazy, so transport failures only surface on read; treat any read error as
// a gateway failure.
func (c *Client) gatewayGet(ctx context.Context, key string) ([]byte, error) {
	obj, err := c.mc.GetObject(ctx, c.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// fallbackPath maps an object key onto a single flat file name in the
// fallback directory. Path escaping keeps keys with slashes from escaping
// the directory.
func (c *Client) fallbackPath(key string) string {
	return filepath.Join(c.cfg.FallbackDir, url.PathEscape(key))
}
