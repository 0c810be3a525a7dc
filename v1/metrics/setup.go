package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated Prometheus registry with the SQL executor metrics
// and the HTTP server that exposes them.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry holds every collector registered by this instance.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationRows     *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the SQL operation metrics (and the
// default Go collectors when enabled), and prepares the HTTP server.
//
// All metrics carry the constant label service="<cfg.ServiceName>".
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "billing"})
//	connector.WithObserver(m)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.operationsTotal = createCounterVec(cfg.Namespace, "sql_operations_total",
		"Total number of SQL executor operations", []string{"operation", "mode", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "sql_operation_duration_seconds",
		"Duration of SQL executor operations in seconds, including pool acquisition", []string{"operation", "mode"}, prometheus.DefBuckets)
	m.operationRows = createHistogramVec(cfg.Namespace, "sql_operation_rows",
		"Number of rows returned by SQL executor operations", []string{"operation"}, prometheus.ExponentialBuckets(1, 4, 8))

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationRows,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}
