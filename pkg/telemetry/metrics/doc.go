// Package metrics exposes configuration and resolution metrics to
// Prometheus.
//
// A Collector is passed to the bootstrapper and the resolver as their
// recorder:
//
//	collector := metrics.NewCollector(metrics.Options{}, nil)
//	config.NewBootstrapper(ctx, config.WithRecorder(collector))
//	resolve.New(ctx, resolve.WithRecorder(collector))
//	mux.Handle("/metrics", collector.Handler())
package metrics
