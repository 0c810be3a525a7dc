package metrics

import (
	"github.com/Aleph-Alpha/sqlcore/v1/observability"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// ObserveOperation records one finished executor operation. It implements
// observability.Observer, so a *Metrics can be passed to WithObserver.
//
// Query and table-valued function failures are counted as errors even though
// the executor swallowed them and handed the caller a nil result.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	status := statusSuccess
	if ctx.Error != nil {
		status = statusError
	}

	m.operationsTotal.WithLabelValues(ctx.Operation, ctx.SubResource, status).Inc()
	m.operationDuration.WithLabelValues(ctx.Operation, ctx.SubResource).Observe(ctx.Duration.Seconds())
	if ctx.Error == nil {
		m.operationRows.WithLabelValues(ctx.Operation).Observe(float64(ctx.Size))
	}
}

var _ observability.Observer = (*Metrics)(nil)
