package tracing

import (
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sampling strategies.
const (
	// SamplerAlways samples all traces
	SamplerAlways = "always"

	// SamplerNever samples no traces
	SamplerNever = "never"

	// SamplerRatio samples a percentage of traces
	SamplerRatio = "ratio"
)

// createSampler creates a sampler based on the strategy and ratio. Every
// sampler is wrapped in ParentBased, so a child follows its parent's
// decision.
func createSampler(strategy string, ratio float64) (sdktrace.Sampler, error) {
	var baseSampler sdktrace.Sampler

	switch strategy {
	case SamplerAlways:
		baseSampler = sdktrace.AlwaysSample()

	case SamplerNever:
		baseSampler = sdktrace.NeverSample()

	case SamplerRatio:
		if ratio < 0.0 || ratio > 1.0 {
			return nil, fmt.Errorf("sample ratio must be between 0.0 and 1.0, got %f", ratio)
		}

		baseSampler = sdktrace.TraceIDRatioBased(ratio)

	default:
		return nil, fmt.Errorf("unknown sampler strategy: %s (valid: always, never, ratio)", strategy)
	}

	return sdktrace.ParentBased(baseSampler), nil
}

// SamplingConfig contains configuration for trace sampling.
type SamplingConfig struct {
	// Strategy is the sampling strategy ("always", "never", "ratio")
	Strategy string

	// Ratio is the sampling ratio for "ratio" strategy (0.0 to 1.0)
	Ratio float64
}

// ValidateSamplingConfig validates the sampling configuration.
func ValidateSamplingConfig(cfg SamplingConfig) error {
	switch cfg.Strategy {
	case SamplerAlways, SamplerNever, SamplerRatio:
	default:
		return fmt.Errorf("invalid sampling strategy: %s (valid: always, never, ratio)", cfg.Strategy)
	}

	if cfg.Strategy == SamplerRatio {
		if cfg.Ratio < 0.0 || cfg.Ratio > 1.0 {
			return fmt.Errorf("sample ratio must be between 0.0 and 1.0, got %f", cfg.Ratio)
		}
	}

	return nil
}
