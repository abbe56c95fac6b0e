// Package observability defines the shared observer contract used by the
// Gridmesh client packages.
//
// Client packages (compute, storage) accept an optional Observer and emit one
// OperationContext per operation. The package deliberately contains no
// implementation: consumers bridge operations into their own metrics or
// tracing backend by implementing Observer, typically on top of the metrics
// package.
package observability

import "time"

// OperationContext describes a single client operation for observation.
type OperationContext struct {
	// Component is the emitting package, e.g. "compute" or "storage".
	Component string

	// Operation is the name of the operation, e.g. "submit_task" or "upload".
	Operation string

	// Resource is the primary subject of the operation (task id, object key).
	Resource string

	// SubResource carries secondary context (model tag, bucket name).
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error the operation ended with, or nil on success.
	Error error

	// Size is an operation-specific byte or element count, 0 if not applicable.
	Size int64

	// Metadata carries additional operation-specific key-value pairs.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from client packages.
//
// Implementations must be safe for concurrent use; clients may emit from
// multiple goroutines. A nil Observer on a client disables observation.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
