package compute

import "time"

// TaskStatus is the lifecycle state of a submitted compute task.
type TaskStatus string

const (
	// StatusPending means the task is accepted but not yet scheduled.
	StatusPending TaskStatus = "pending"

	// StatusRunning means a network node is executing the task.
	StatusRunning TaskStatus = "running"

	// StatusSucceeded means the task finished and carries a result.
	StatusSucceeded TaskStatus = "succeeded"

	// StatusFailed means the network reported an explicit failure.
	StatusFailed TaskStatus = "failed"

	// StatusTimedOut means the poll budget ran out before a terminal state.
	StatusTimedOut TaskStatus = "timed_out"
)

// Terminal reports whether no further status change can happen.
func (s TaskStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusTimedOut
}

// EmbeddingVector is a fixed-length numeric representation of input text.
// The length is fixed per model; equality is componentwise.
type EmbeddingVector []float64

// ComputeTask is a unit of submitted computation tracked by id.
//
// Result is non-nil if and only if Status is StatusSucceeded. Failed or
// timed-out tasks never carry a result; the client substitutes the local
// fallback embedder for those.
type ComputeTask struct {
	// ID is the opaque identifier assigned by the network.
	ID string

	// Input is the text (or batch of texts) the task was submitted with.
	Input []string

	// Model is the model tag the task was submitted for.
	Model string

	// Status is the last observed lifecycle state.
	Status TaskStatus

	// Result holds one vector per input text once the task succeeded.
	Result []EmbeddingVector
}

// NetworkStats are process-wide counters describing how requests were
// served. They are read-only to callers and reset only on process restart.
type NetworkStats struct {
	// RequestsSubmitted is the total number of embedding requests handled,
	// regardless of which path served them.
	RequestsSubmitted uint64

	// Successes is the number of requests served by the network path.
	Successes uint64

	// FallbacksUsed is the number of requests served by the local fallback
	// embedder. A non-zero value means callers received degraded-quality
	// vectors for that many requests.
	FallbacksUsed uint64

	// AvgLatency is the mean end-to-end latency across all requests.
	AvgLatency time.Duration
}
