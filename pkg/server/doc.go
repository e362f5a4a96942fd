// Package server runs the HTTP endpoint that exposes keystone's metrics and
// resolver health while the configuration resource is being watched.
//
//	checker := health.New(0)
//	resolve.RegisterChecks(checker, resolver)
//
//	srv := server.New(server.Config{ListenAddress: ":9464"},
//	    server.NewTelemetryHandler(collector.Handler(), checker), logger)
//	err := srv.Start(ctx) // returns after ctx is cancelled
//
// Routes:
//
//   - GET /metrics - Prometheus metrics
//   - GET /healthz - liveness, always 200
//   - GET /readyz - readiness, 503 when any resolver fails
//
// Setting Config.TLS serves HTTPS; the keystone command builds it from the
// resolved [tls] section.
package server
