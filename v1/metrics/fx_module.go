package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/sqlcore/v1/logger"
	"github.com/Aleph-Alpha/sqlcore/v1/observability"
	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// FXModule provides *Metrics, exposes it as the observability.Observer picked
// up by sqlcore.FXModule, exports the stats of the *sqlcore.Pool when one is
// in the container, and runs the /metrics server for the app's lifetime.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    sqlcore.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "billing"}
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterPoolMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// PoolMetricsParams groups the dependencies of RegisterPoolMetrics.
type PoolMetricsParams struct {
	fx.In

	Metrics *Metrics
	Pool    *sqlcore.Pool `optional:"true"`
}

// RegisterPoolMetrics exports the pool's stats under pool="default".
func RegisterPoolMetrics(params PoolMetricsParams) error {
	if params.Pool == nil {
		return nil
	}
	return params.Metrics.RegisterPool("default", params.Pool)
}

// RegisterMetricsLifecycle starts the Prometheus HTTP server on app start and
// shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
