package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "keystone"

// Options configures the Collector.
type Options struct {
	// Namespace prefixes metric names. Defaults to DefaultNamespace.
	Namespace string
}

// Collector owns the registry and every keystone metric. It satisfies
// config.Recorder and resolve.Recorder, so it can be handed directly to a
// Bootstrapper and a Resolver.
type Collector struct {
	registry *prometheus.Registry

	configMetrics  *ConfigMetrics
	resolveMetrics *ResolveMetrics
}

// NewCollector creates a collector. A nil registry gets a fresh one.
func NewCollector(opts Options, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}

	return &Collector{
		registry:       registry,
		configMetrics:  NewConfigMetrics(opts, registry),
		resolveMetrics: NewResolveMetrics(opts, registry),
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// BootstrapCompleted records the outcome of a bootstrap run.
func (c *Collector) BootstrapCompleted(outcome string) {
	c.configMetrics.RecordBootstrap(outcome)
}

// SectionHealed records a section filled from defaults.
func (c *Collector) SectionHealed(section string) {
	c.configMetrics.RecordHealed(section)
}

// Published records the published generation.
func (c *Collector) Published(generation string) {
	c.configMetrics.SetGeneration(generation)
}

// DriftObserved records a drift verdict.
func (c *Collector) DriftObserved(verdict string) {
	c.configMetrics.RecordDrift(verdict)
}

// ResolveCompleted records a resolution outcome.
func (c *Collector) ResolveCompleted(resolver, outcome string) {
	c.resolveMetrics.RecordResolve(resolver, outcome)
}
