package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
)

// FXModule provides the *Tracer and its trace.TracerProvider, which
// sqlcore.FXModule hands to the executors, and shuts the provider down when
// the app stops.
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    sqlcore.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
		func(t *Tracer) trace.TracerProvider { return t.TracerProvider() },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// NewClientWithDI builds the Tracer from the container's Config and logger.
func NewClientWithDI(cfg Config, log *logger.LoggerClient) (*Tracer, error) {
	return NewClient(cfg, log)
}

// RegisterTracerLifecycle flushes and stops the tracer provider on app stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil, nil)
				return nil
			}
			tracer.logger.Info("Shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
