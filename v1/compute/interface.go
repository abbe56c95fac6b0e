package compute

import "context"

// Provider is the low-level contract to the compute network.
//
// The only implementation is the unexported gateway provider; application
// code should depend on *Client, which adds the fallback and stats behavior
// on top.
type Provider interface {
	// SubmitTask sends a computation request for the given texts and returns
	// the task identifier assigned by the network.
	SubmitTask(ctx context.Context, input []string, model string) (string, error)

	// PollTask queries the task by id on a fixed interval until it reaches a
	// terminal state or the poll budget is exhausted.
	PollTask(ctx context.Context, taskID string) (*ComputeTask, error)

	// Health performs a single cheap liveness request against the gateway.
	Health(ctx context.Context) error
}
