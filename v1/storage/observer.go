package storage

import (
	"time"

	"github.com/gridmesh/std/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track storage operations for
// metrics and tracing.
//
// Notes:
//   - resource: bucket name
//   - subResource: object key
func (c *Client) observeOperation(operation, objectKey string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "storage",
		Operation:   operation,
		Resource:    c.cfg.Bucket,
		SubResource: objectKey,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
