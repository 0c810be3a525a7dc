package sqlcore

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/sqlcore/v1/observability"
)

const instrumentationName = "github.com/Aleph-Alpha/sqlcore/v1/sqlcore"

// Operation names reported to observers and used as span names.
const (
	OpExecuteQuery                    = "execute_query"
	OpExecuteStoredProcedure          = "execute_stored_procedure"
	OpExecuteAndReturnStoredProcedure = "execute_and_return_stored_procedure"
	OpExecuteTableValuedFunction      = "execute_table_valued_function"
)

// Driver calls named in DriverError.Op.
const (
	opConnect  = "connect"
	opCursor   = "cursor"
	opExecute  = "execute"
	opFetchAll = "fetchall"
	opCommit   = "commit"
	opRollback = "rollback"
	opClose    = "close"
)

// call tracks one executor operation from acquisition to release and reports
// it to the tracer and the observer when it ends.
type call struct {
	ctx      context.Context
	span     trace.Span
	exec     *executor
	op       string
	resource string
	start    time.Time
	err      error
	rows     int
}

func (e *executor) begin(ctx context.Context, op, resource string) *call {
	tp := e.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	ctx, span := tp.Tracer(instrumentationName).Start(ctx, "sqlcore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.operation", op),
			attribute.String("db.statement", resource),
			attribute.String("sqlcore.mode", e.mode),
		),
	)

	return &call{
		ctx:      ctx,
		span:     span,
		exec:     e,
		op:       op,
		resource: resource,
		start:    time.Now(),
	}
}

// fail records err as the outcome of the call and returns it.
func (c *call) fail(err error) error {
	c.err = err
	return err
}

func (c *call) end() {
	if c.err != nil {
		c.span.RecordError(c.err)
		c.span.SetStatus(codes.Error, c.err.Error())
	}
	c.span.SetAttributes(attribute.Int("db.rows", c.rows))
	c.span.End()

	c.exec.observeOperation(c.op, c.resource, time.Since(c.start), c.err, int64(c.rows))
}

// observeOperation notifies the observer about an operation if one is configured.
func (e *executor) observeOperation(operation, resource string, duration time.Duration, err error, rows int64) {
	if e == nil || e.observer == nil {
		return
	}

	e.observer.ObserveOperation(observability.OperationContext{
		Component:   "sqlcore",
		Operation:   operation,
		Resource:    resource,
		SubResource: e.mode,
		Duration:    duration,
		Error:       err,
		Size:        rows,
	})
}
