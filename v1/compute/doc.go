// Package compute provides a unified, high-level API for computing text
// embeddings through the Gridmesh decentralized compute network.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// gateway HTTP details, the task lifecycle, and the degraded-mode fallback.
//
// A client is constructed using:
//
//	client, err := compute.NewClient(cfg)
//
// Once created, the client can generate embeddings via:
//
//	client.GenerateEmbedding(ctx, "hello")
//
// or batch embeddings via:
//
//	client.GenerateBatchEmbeddings(ctx, []string{"a", "b", "c"})
//
// # Task protocol
//
// Work on the network is asynchronous. Each request becomes a ComputeTask:
//
//  1. Submit: one POST to the gateway returns an opaque task id.
//  2. Poll: the task is queried on a fixed interval until it reaches a
//     terminal state (succeeded, failed) or the attempt budget is spent.
//  3. Fallback: if submission or polling fails in any way, the request is
//     served by a deterministic local embedder instead.
//
// The poll budget is strict: MaxPollAttempts polls spaced PollIntervalMS
// apart, with transport errors consuming attempts like any other poll.
// There is no unbounded wait; callers may additionally cancel the context
// to abort an in-flight loop early, abandoning the pending task.
//
// # Fallback semantics
//
// The two Generate entry points never propagate network-side failures. For
// valid input they always return a vector of the configured length; when the
// network path failed, the vector comes from the local FallbackEmbedder,
// which derives a fixed-length unit vector purely from the text. Fallback
// vectors are a degraded-quality stand-in, not an approximation of the
// network model. Callers that care which path served a request read
// Client.Stats:
//
//	stats := client.Stats()
//	if stats.FallbacksUsed > 0 { ... }
//
// The only errors the Generate entry points return are ErrInvalidInput
// (empty text or batch, rejected before any network call) and the caller's
// own context cancellation.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := compute.NewConfig()
//
// Required variables:
//
//   - COMPUTE_ENDPOINT
//     Base URL of the Gridmesh gateway (no trailing path or slash).
//
// Optional variables:
//
//   - COMPUTE_SERVICE_TOKEN: bearer token for the gateway
//   - COMPUTE_DEFAULT_MODEL: model tag used when a call passes none
//   - COMPUTE_EMBEDDING_DIMENSIONS: fixed vector length (default 768)
//   - COMPUTE_POLL_INTERVAL_MS: delay between polls (default 1500)
//   - COMPUTE_MAX_POLL_ATTEMPTS: poll budget per task (default 20)
//   - COMPUTE_BATCH_CONCURRENCY: max in-flight batch items (default 4)
//   - COMPUTE_HTTP_TIMEOUT_SECONDS: request timeout (default 30)
//
// Configuration correctness can be verified via:
//
//	if err := cfg.Validate(); err != nil { ... }
//
// # Observability
//
// Stats are collected by an injectable StatsCollector guarded by a mutex,
// never by package globals; pass a shared collector through
// WithStatsCollector when several clients should aggregate. WithMetrics
// feeds the requests_total / request_duration_seconds /
// network_available metrics of the metrics package, and WithObserver emits
// one observability.OperationContext per request.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	compute.FXModule
//
// which supplies *compute.Config and *compute.Client wired to the
// container's logger and metrics, and registers a lifecycle hook to clean up
// HTTP resources on shutdown.
//
// # Design Notes
//
//   - Only a single provider implementation exists (the unexported gateway
//     provider). Application code depends on *Client; the Provider interface
//     exists for the internal seam between the facade and the wire layer.
//
//   - Batch items are resolved independently with bounded concurrency; one
//     item's fallback never affects the others, and the output sequence
//     preserves input order.
//
//   - CheckNetworkAvailability fails closed: it returns false on any probe
//     error and never returns an error itself.
//
//   - Unknown gateway status strings count as in-flight, so a gateway
//     rolling out new states degrades to a poll timeout (and thus a
//     fallback), never to a spurious hard failure.
package compute
