package sqlcore

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/sqlcore/v1/observability"
)

// AsyncConnector has the same contract as Connector but never blocks the caller.
// Each operation runs on its own goroutine and returns a Future. Inside an
// operation every driver call (dial in unbounded mode, cursor, execute, fetch,
// commit, rollback, close) is dispatched separately to a bounded worker pool and
// awaited, so the steps of one operation stay strictly sequential while
// concurrent operations interleave between them. It implements AsyncExecutor.
type AsyncConnector struct {
	executor
}

// NewAsyncConnector creates a pool from cfg and returns an AsyncConnector that owns it.
func NewAsyncConnector(ctx context.Context, cfg Config, dialer Dialer, log Logger) (*AsyncConnector, error) {
	pool, err := NewPool(ctx, cfg, dialer, log)
	if err != nil {
		return nil, err
	}
	return NewAsyncConnectorFromPool(pool, cfg.asyncWorkers(), log), nil
}

// NewAsyncConnectorFromPool returns an AsyncConnector over an existing pool with
// at most workers concurrent driver calls. A non-positive workers selects
// DefaultAsyncWorkers(). Closing the AsyncConnector closes the pool.
func NewAsyncConnectorFromPool(pool *Pool, workers int, log Logger) *AsyncConnector {
	if workers <= 0 {
		workers = DefaultAsyncWorkers()
	}
	if log == nil {
		log = pool.logger
	}

	return &AsyncConnector{
		executor: executor{
			pool:     pool,
			logger:   log,
			dispatch: newWorkerPool(workers).dispatch,
			mode:     modeAsync,
		},
	}
}

// WithObserver sets an observer notified after every operation and returns the
// AsyncConnector for chaining.
func (a *AsyncConnector) WithObserver(observer observability.Observer) *AsyncConnector {
	a.observer = observer
	return a
}

// WithTracerProvider sets the provider spans are created with.
func (a *AsyncConnector) WithTracerProvider(tp trace.TracerProvider) *AsyncConnector {
	a.tracerProvider = tp
	return a
}

// Pool returns the underlying pool.
func (a *AsyncConnector) Pool() *Pool {
	return a.pool
}

// ExecuteQuery is the asynchronous form of Connector.ExecuteQuery.
func (a *AsyncConnector) ExecuteQuery(ctx context.Context, query string, params ...any) *Future[ResultSet] {
	return goFuture(func() (ResultSet, error) {
		return a.executeQuery(ctx, query, params)
	})
}

// ExecuteStoredProcedure is the asynchronous form of Connector.ExecuteStoredProcedure.
func (a *AsyncConnector) ExecuteStoredProcedure(ctx context.Context, name string, args ...any) *Future[struct{}] {
	return goFuture(func() (struct{}, error) {
		_, err := a.executeStoredProcedure(ctx, name, args, false)
		return struct{}{}, err
	})
}

// ExecuteAndReturnStoredProcedure is the asynchronous form of
// Connector.ExecuteAndReturnStoredProcedure.
func (a *AsyncConnector) ExecuteAndReturnStoredProcedure(ctx context.Context, name string, args ...any) *Future[ResultSet] {
	return goFuture(func() (ResultSet, error) {
		return a.executeStoredProcedure(ctx, name, args, true)
	})
}

// ExecuteTableValuedFunction is the asynchronous form of
// Connector.ExecuteTableValuedFunction.
func (a *AsyncConnector) ExecuteTableValuedFunction(ctx context.Context, name string, params ...any) *Future[ResultSet] {
	return goFuture(func() (ResultSet, error) {
		return a.executeTableValuedFunction(ctx, name, params)
	})
}

// Close closes every idle pooled connection, each close running on a worker.
func (a *AsyncConnector) Close() error {
	return a.closeAll()
}

var _ AsyncExecutor = (*AsyncConnector)(nil)
