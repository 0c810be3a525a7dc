// Package metrics exports Prometheus metrics for sqlcore executors and pools.
//
// A *Metrics owns an isolated registry (every metric carries a constant
// "service" label) and an HTTP server exposing it on /metrics. It implements
// observability.Observer, so it plugs straight into the executors:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "billing",
//	    EnableDefaultCollectors: true,
//	})
//	connector.WithObserver(m)
//	if err := m.RegisterPool("default", connector.Pool()); err != nil {
//	    return err
//	}
//	go m.Server.ListenAndServe()
//
// # Exported metrics
//
//	sql_operations_total{operation,mode,status}       counter
//	sql_operation_duration_seconds{operation,mode}    histogram
//	sql_operation_rows{operation}                      histogram
//	sql_pool_capacity{pool}                            gauge
//	sql_pool_idle_connections{pool}                    gauge
//	sql_pool_in_use_connections{pool}                  gauge
//	sql_pool_acquired_total{pool}                      counter
//	sql_pool_released_total{pool}                      counter
//
// operation is one of sqlcore's Op* names and mode is "sync" or "async".
// Config.Namespace, when set, prefixes every name.
//
// # FX Integration
//
// FXModule provides *Metrics and the observability.Observer consumed by
// sqlcore.FXModule, registers the pool gauges when a *sqlcore.Pool is in the
// container and starts/stops the HTTP server with the app lifecycle. It
// requires a *logger.LoggerClient.
//
// Custom metrics can be added with CreateCounter, CreateHistogram and CreateGauge;
// they are registered on the same registry.
package metrics
