package compute

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// gatewayProvider talks to the Gridmesh gateway HTTP API. It holds no state
// beyond the connection pool; task identifiers returned by SubmitTask are
// the only handle callers keep.
type gatewayProvider struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client

	pollInterval    time.Duration
	maxPollAttempts int
}

func newGatewayProvider(cfg *Config) (*gatewayProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("gateway: missing COMPUTE_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &gatewayProvider{
		baseURL:         base,
		serviceToken:    cfg.ServiceToken,
		httpClient:      &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		pollInterval:    time.Duration(cfg.PollIntervalMS) * time.Millisecond,
		maxPollAttempts: cfg.MaxPollAttempts,
	}, nil
}

// taskStatusResponse is the gateway's task status payload. The schema is
// owned by the network; only the fields below are relied on.
type taskStatusResponse struct {
	TaskID string            `json:"task_id"`
	Status string            `json:"status"`
	Result []EmbeddingVector `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// mapRemoteStatus converts a gateway status string into a TaskStatus.
// Unknown strings count as still in flight so a gateway adding states never
// turns healthy tasks into early failures.
func mapRemoteStatus(remote string) TaskStatus {
	switch strings.ToLower(remote) {
	case "pending", "queued":
		return StatusPending
	case "running", "in_progress", "processing":
		return StatusRunning
	case "succeeded", "completed", "success":
		return StatusSucceeded
	case "failed", "error":
		return StatusFailed
	default:
		return StatusRunning
	}
}

// Health performs a single request against the gateway health endpoint.
func (g *gatewayProvider) Health(ctx context.Context) error {
	return g.getJSON(ctx, fmt.Sprintf("%s/v1/health", g.baseURL), nil)
}

// Close releases idle connections held by the provider's HTTP client.
func (g *gatewayProvider) Close() error {
	g.httpClient.CloseIdleConnections()
	return nil
}
