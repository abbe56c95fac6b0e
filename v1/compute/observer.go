package compute

import (
	"time"

	"github.com/gridmesh/std/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track compute operations for
// metrics and tracing.
//
// Notes:
//   - resource: the task id (empty when submission itself failed)
//   - subResource: the model tag
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "compute",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
