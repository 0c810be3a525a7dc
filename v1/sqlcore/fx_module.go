package sqlcore

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
	"github.com/Aleph-Alpha/sqlcore/v1/observability"
)

// FXModule provides one shared *Pool and both executors on top of it:
// *Connector (also as Executor) and *AsyncConnector (also as AsyncExecutor).
// The pool is closed when the application stops.
//
// Dependencies required by this module:
//   - sqlcore.Config
//   - sqlcore.Dialer (sqldriver.FXModule provides one)
//   - *logger.LoggerClient, optional
//   - observability.Observer, optional (metrics.FXModule provides one)
//   - trace.TracerProvider, optional (tracer.FXModule provides one)
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    sqldriver.FXModule,
//	    sqlcore.FXModule,
//	    fx.Provide(
//	        func() logger.Config { return logger.Config{Level: logger.Info} },
//	        func() sqldriver.Config { return sqldriver.Config{Driver: sqldriver.DriverSQLServer} },
//	        func() sqlcore.Config { return sqlcore.DefaultConfig() },
//	    ),
//	    fx.Invoke(func(db sqlcore.Executor) {
//	        // use db
//	    }),
//	)
var FXModule = fx.Module("sqlcore",
	fx.Provide(
		NewPoolWithDI,
		NewConnectorWithDI,
		NewAsyncConnectorWithDI,
		func(c *Connector) Executor { return c },
		func(a *AsyncConnector) AsyncExecutor { return a },
	),
	fx.Invoke(RegisterPoolLifecycle),
)

// PoolParams groups the dependencies needed to create the shared pool.
type PoolParams struct {
	fx.In

	Config Config
	Dialer Dialer
	Logger *logger.LoggerClient `optional:"true"`
}

// ExecutorParams groups the dependencies needed to create the executors.
type ExecutorParams struct {
	fx.In

	Config   Config
	Pool     *Pool
	Logger   *logger.LoggerClient   `optional:"true"`
	Observer observability.Observer `optional:"true"`

	TracerProvider trace.TracerProvider `optional:"true"`
}

// NewPoolWithDI opens the pool described by Config using the injected Dialer.
func NewPoolWithDI(params PoolParams) (*Pool, error) {
	return NewPool(context.Background(), params.Config, params.Dialer, loggerOrNil(params.Logger))
}

// NewConnectorWithDI returns a Connector over the shared pool.
func NewConnectorWithDI(params ExecutorParams) *Connector {
	return NewConnectorFromPool(params.Pool, loggerOrNil(params.Logger)).
		WithObserver(params.Observer).
		WithTracerProvider(params.TracerProvider)
}

// NewAsyncConnectorWithDI returns an AsyncConnector over the shared pool.
func NewAsyncConnectorWithDI(params ExecutorParams) *AsyncConnector {
	return NewAsyncConnectorFromPool(params.Pool, params.Config.asyncWorkers(), loggerOrNil(params.Logger)).
		WithObserver(params.Observer).
		WithTracerProvider(params.TracerProvider)
}

// PoolLifecycleParams groups the dependencies needed for pool lifecycle management.
type PoolLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Pool      *Pool
}

// RegisterPoolLifecycle closes every idle pooled connection on application stop.
func RegisterPoolLifecycle(params PoolLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Pool.CloseAll()
		},
	})
}

// loggerOrNil avoids storing a typed nil *LoggerClient in the Logger interface.
func loggerOrNil(l *logger.LoggerClient) Logger {
	if l == nil {
		return nil
	}
	return l
}
