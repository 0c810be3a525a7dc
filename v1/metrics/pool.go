package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/sqlcore/v1/sqlcore"
)

// RegisterPool exports the usage of pool under the "pool" label name.
// Values are read from Pool.Stats at scrape time.
func (m *Metrics) RegisterPool(name string, pool *sqlcore.Pool) error {
	labels := prometheus.Labels{"pool": name}

	gauge := func(metric, help string, value func(sqlcore.Stats) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return value(pool.Stats()) })
	}
	counter := func(metric, help string, value func(sqlcore.Stats) float64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   m.namespace,
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return value(pool.Stats()) })
	}

	for _, c := range []prometheus.Collector{
		gauge("sql_pool_capacity", "Configured pool capacity; 0 means a connection per operation",
			func(s sqlcore.Stats) float64 { return float64(s.Capacity) }),
		gauge("sql_pool_idle_connections", "Connections waiting in the pool",
			func(s sqlcore.Stats) float64 { return float64(s.Idle) }),
		gauge("sql_pool_in_use_connections", "Connections currently checked out",
			func(s sqlcore.Stats) float64 { return float64(s.InUse) }),
		counter("sql_pool_acquired_total", "Connections checked out since the pool was created",
			func(s sqlcore.Stats) float64 { return float64(s.Acquired) }),
		counter("sql_pool_released_total", "Connections returned since the pool was created",
			func(s sqlcore.Stats) float64 { return float64(s.Released) }),
	} {
		if err := m.registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}
