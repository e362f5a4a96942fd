package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ResolveMetrics tracks connection resolution.
//
// Metrics:
//   - keystone_resolve_total: resolutions by resolver and outcome
type ResolveMetrics struct {
	resolveTotal *prometheus.CounterVec
}

// NewResolveMetrics creates and registers resolution metrics.
func NewResolveMetrics(opts Options, registry prometheus.Registerer) *ResolveMetrics {
	rm := &ResolveMetrics{
		resolveTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Name:      "resolve_total",
				Help:      "Connection resolutions by resolver and outcome",
			},
			[]string{"resolver", "outcome"},
		),
	}
	registry.MustRegister(rm.resolveTotal)
	return rm
}

// RecordResolve counts one resolution.
func (rm *ResolveMetrics) RecordResolve(resolver, outcome string) {
	rm.resolveTotal.WithLabelValues(resolver, outcome).Inc()
}
