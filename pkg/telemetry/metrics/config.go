package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ConfigMetrics tracks the configuration lifecycle.
//
// Metrics:
//   - keystone_config_bootstrap_total: bootstrap runs by outcome
//   - keystone_config_sections_healed_total: sections filled from defaults
//   - keystone_config_generation_info: 1 for the published generation
//   - keystone_config_drift_events_total: on-disk edits seen after publish
type ConfigMetrics struct {
	bootstrapTotal *prometheus.CounterVec
	healedTotal    *prometheus.CounterVec
	generationInfo *prometheus.GaugeVec
	driftTotal     *prometheus.CounterVec
}

// NewConfigMetrics creates and registers configuration metrics.
func NewConfigMetrics(opts Options, registry prometheus.Registerer) *ConfigMetrics {
	cm := &ConfigMetrics{
		bootstrapTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "config",
				Name:      "bootstrap_total",
				Help:      "Configuration bootstrap runs by outcome",
			},
			[]string{"outcome"},
		),

		healedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "config",
				Name:      "sections_healed_total",
				Help:      "Sections filled from defaults during bootstrap",
			},
			[]string{"section"},
		),

		generationInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: opts.Namespace,
				Subsystem: "config",
				Name:      "generation_info",
				Help:      "Published configuration generation; always 1",
			},
			[]string{"generation"},
		),

		driftTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "config",
				Name:      "drift_events_total",
				Help:      "Edits to the configuration resource after publish, by verdict",
			},
			[]string{"verdict"},
		),
	}

	registry.MustRegister(
		cm.bootstrapTotal,
		cm.healedTotal,
		cm.generationInfo,
		cm.driftTotal,
	)
	return cm
}

// RecordBootstrap counts a bootstrap run.
func (cm *ConfigMetrics) RecordBootstrap(outcome string) {
	cm.bootstrapTotal.WithLabelValues(outcome).Inc()
}

// RecordHealed counts a healed section.
func (cm *ConfigMetrics) RecordHealed(section string) {
	cm.healedTotal.WithLabelValues(section).Inc()
}

// SetGeneration marks generation as the published one.
func (cm *ConfigMetrics) SetGeneration(generation string) {
	cm.generationInfo.Reset()
	cm.generationInfo.WithLabelValues(generation).Set(1)
}

// RecordDrift counts a drift event.
func (cm *ConfigMetrics) RecordDrift(verdict string) {
	cm.driftTotal.WithLabelValues(verdict).Inc()
}
