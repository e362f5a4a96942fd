// Package telemetry groups keystone's observability packages.
//
//   - logging: slog setup with secret redaction and optional file fan-out
//   - metrics: Prometheus counters for bootstrap, healing, drift and resolution
//   - tracing: OpenTelemetry spans exported over OTLP
//   - health: named readiness checks and their HTTP endpoints
//
// A metrics.Collector satisfies both config.Recorder and resolve.Recorder,
// so one collector observes the whole lifecycle:
//
//	collector := metrics.NewCollector(metrics.Options{}, nil)
//	config.NewBootstrapper(ctx, config.WithRecorder(collector)).Init(path)
//	resolver := resolve.New(ctx, resolve.WithRecorder(collector))
package telemetry
