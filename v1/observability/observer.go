// Package observability defines the hook through which components report the
// operations they perform. Metrics and tracing backends implement Observer;
// components accept one optionally and skip reporting when none is configured.
package observability

import "time"

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "sqlcore".
	Component string

	// Operation is the operation name, e.g. "execute_query".
	Operation string

	// Resource is what the operation acted on (statement, procedure or function name).
	Resource string

	// SubResource carries additional context such as the executor mode.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the failure observed by the operation, including failures that were
	// logged and swallowed instead of returned.
	Error error

	// Size is the number of rows produced, where meaningful.
	Size int64

	// Metadata holds free-form additional attributes.
	Metadata map[string]interface{}
}

// Observer receives OperationContext notifications.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
