// Package health runs named readiness checks and serves them as HTTP
// probes.
//
// Checks run concurrently, each bounded by the checker's timeout:
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("tls", func(ctx context.Context) error {
//	    _, err := resolver.TLS()
//	    return err
//	})
//	status := checker.CheckReadiness(ctx)
//
// Register mounts /healthz (liveness) and /readyz (readiness) on a mux.
// Readiness answers 503 while any check fails.
package health
