package compute

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gridmesh/std/v1/logger"
	"github.com/gridmesh/std/v1/metrics"
	"github.com/gridmesh/std/v1/observability"
)

// Client is the public entrypoint for computing embeddings over the
// Gridmesh network.
//
// It orchestrates submit, poll, and fallback: a request is submitted to the
// gateway, polled until terminal, and on any network-side failure the local
// fallback embedder serves the request instead. The two Generate entry
// points therefore always return a vector for valid input; which path served
// is visible through Stats.
type Client struct {
	provider Provider
	fallback *FallbackEmbedder
	stats    *StatsCollector

	endpoint         string
	defaultModel     string
	dimensions       int
	batchConcurrency int

	logger   *logger.Logger
	metrics  metrics.MetricsCollector
	observer observability.Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger attaches a structured logger for fallback and probe events.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// WithMetrics attaches a metrics collector; requests feed the
// requests_total, request_duration_seconds, and network_available metrics.
func WithMetrics(mc metrics.MetricsCollector) Option {
	return func(c *Client) { c.metrics = mc }
}

// WithObserver attaches an operation observer.
func WithObserver(obs observability.Observer) Option {
	return func(c *Client) { c.observer = obs }
}

// WithStatsCollector substitutes a caller-owned stats collector, e.g. one
// shared between several clients.
func WithStatsCollector(s *StatsCollector) Option {
	return func(c *Client) { c.stats = s }
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the gateway provider.
// Application code should depend on *Client, not on Provider.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("compute: invalid config: %w", err)
	}

	p, err := newGatewayProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("compute: failed to create provider: %w", err)
	}

	c := &Client{
		provider:         p,
		fallback:         NewFallbackEmbedder(cfg.Dimensions),
		stats:            NewStatsCollector(),
		endpoint:         cfg.Endpoint,
		defaultModel:     cfg.DefaultModel,
		dimensions:       cfg.Dimensions,
		batchConcurrency: cfg.BatchConcurrency,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateEmbedding computes one embedding for text.
//
// The network path (submit, then poll) is tried first; on
// ErrNetworkUnavailable, ErrTaskFailed, or ErrPollTimeout the local fallback
// embedder serves the request, so a valid input always yields a vector of
// the configured length. Only ErrInvalidInput (empty text, checked before
// any network call) and caller cancellation surface as errors.
//
// The optional model argument overrides the configured default tag.
func (c *Client) GenerateEmbedding(ctx context.Context, text string, model ...string) (EmbeddingVector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	m := c.resolveModel(model)
	start := time.Now()

	vec, taskID, err := c.embedOverNetwork(ctx, text, m)
	if err == nil {
		c.recordSuccess(start, "generate_embedding", taskID, m, len(vec))
		return vec, nil
	}

	if !isFallbackTrigger(err) {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Warn("network path failed, serving fallback embedding", err, map[string]interface{}{
			"task_id": taskID,
			"model":   m,
		})
	}

	vec = c.fallback.Embed(text)
	c.recordFallback(start, "generate_embedding", taskID, m, err, len(vec))
	return vec, nil
}

// GenerateBatchEmbeddings computes one embedding per input text.
//
// Items are resolved independently: one item falling back to the local
// embedder does not affect the others. The output preserves input order.
// An empty batch or a blank item fails the whole call with ErrInvalidInput
// before any network traffic.
func (c *Client) GenerateBatchEmbeddings(ctx context.Context, texts []string, model ...string) ([]EmbeddingVector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts", ErrInvalidInput)
	}
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: input text %d is empty", ErrInvalidInput, i)
		}
	}

	results := make([]EmbeddingVector, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, text := range texts {
		g.Go(func() error {
			// GenerateEmbedding only errors on invalid input (excluded
			// above) or cancellation, so per-item fallback stays isolated.
			vec, err := c.GenerateEmbedding(gctx, text, model...)
			if err != nil {
				return err
			}
			results[i] = vec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// CheckNetworkAvailability probes the gateway with a single cheap request.
// It fails closed: any error, including an unreachable endpoint, yields
// false rather than an error.
func (c *Client) CheckNetworkAvailability(ctx context.Context) bool {
	err := c.provider.Health(ctx)
	available := err == nil

	if c.metrics != nil {
		c.metrics.ObserveNetworkAvailability(available, c.endpoint)
	}
	if !available && c.logger != nil {
		c.logger.Debug("network availability probe failed", err, map[string]interface{}{
			"endpoint": c.endpoint,
		})
	}

	return available
}

// Stats returns a snapshot of the process-wide counters, including how many
// requests were served by the fallback path.
func (c *Client) Stats() NetworkStats {
	return c.stats.Snapshot()
}

// Close releases internal resources held by the provider.
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// embedOverNetwork runs the submit-then-poll path for a single text and
// returns the resulting vector. The task id is returned even on failure so
// callers can attach it to logs and observations.
func (c *Client) embedOverNetwork(ctx context.Context, text, model string) (EmbeddingVector, string, error) {
	taskID, err := c.provider.SubmitTask(ctx, []string{text}, model)
	if err != nil {
		return nil, "", err
	}

	task, err := c.provider.PollTask(ctx, taskID)
	if err != nil {
		return nil, taskID, err
	}

	vec := task.Result[0]
	if len(vec) != c.dimensions {
		return nil, taskID, fmt.Errorf("%w: task %s returned a %d-dimensional vector, want %d",
			ErrTaskFailed, taskID, len(vec), c.dimensions)
	}

	return vec, taskID, nil
}

func (c *Client) resolveModel(model []string) string {
	if len(model) > 0 && model[0] != "" {
		return model[0]
	}
	return c.defaultModel
}

func (c *Client) recordSuccess(start time.Time, operation, taskID, model string, size int) {
	c.stats.RecordSuccess(time.Since(start))
	if c.metrics != nil {
		c.metrics.IncrementRequests("success")
		c.metrics.RecordRequestDuration(start, operation)
	}
	c.observeOperation(operation, taskID, model, time.Since(start), nil, int64(size), nil)
}

func (c *Client) recordFallback(start time.Time, operation, taskID, model string, cause error, size int) {
	c.stats.RecordFallback(time.Since(start))
	if c.metrics != nil {
		c.metrics.IncrementRequests("fallback")
		c.metrics.RecordRequestDuration(start, operation)
	}
	c.observeOperation(operation, taskID, model, time.Since(start), cause, int64(size), map[string]interface{}{
		"served_by": "fallback",
	})
}
