// Package storage wraps the Gridmesh network's S3-compatible storage
// gateway with a local-disk fallback mirror.
//
// # Overview
//
// The package exposes a single public entrypoint, Client:
//
//	client, err := storage.NewClient(cfg)
//
//	loc, err := client.Upload(ctx, "manifests/abc", reader)
//	data, loc, err := client.Download(ctx, "manifests/abc")
//	err = client.Delete(ctx, "manifests/abc")
//
// Every operation tries the gateway first. On transport-level failure,
// Upload mirrors the object into a local directory and Download reads from
// that mirror; both report Location so callers can tell a degraded-mode
// result from a network one. An object found on neither path fails with
// ErrNotFound, and an empty key fails with ErrInvalidKey before either path
// is touched.
//
// The fallback is a degraded-durability stand-in, not replication: a
// locally-mirrored object exists only on this host until the gateway
// recovers.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by
// NewConfig; STORAGE_GATEWAY_ENDPOINT and STORAGE_BUCKET are required, see
// NewConfig for the full list.
//
// # Fx
//
// storage.FXModule provides *Config and *Client wired to the container's
// logger.
package storage
