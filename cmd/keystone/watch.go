package main

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/config"
	"tickline-hq/keystone/pkg/resolve"
	securitytls "tickline-hq/keystone/pkg/security/tls"
	"tickline-hq/keystone/pkg/server"
	"tickline-hq/keystone/pkg/telemetry/health"
)

var watchFlags struct {
	listen    string
	listenTLS bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report edits to the configuration resource",
	Long: `Bootstrap the configuration resource, then report every later edit to
it until interrupted. Each report says whether the edited file is still
complete, has lost sections, no longer parses, or was removed.

The published configuration is not reloaded; restart the consumers to pick
up a change.

With --listen, Prometheus metrics are served on /metrics and the resolver
health checks on /healthz and /readyz. Add --listen-tls to serve them over
HTTPS with the certificate and key from the [tls] section.

Examples:
  keystone watch
  keystone watch --listen :9464
  keystone watch --listen :9464 --listen-tls`,
	Args: cobra.NoArgs,
	RunE: withSession(runWatch),
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.listen, "listen", "", "address for /metrics, /healthz and /readyz (disabled when empty)")
	watchCmd.Flags().BoolVar(&watchFlags.listenTLS, "listen-tls", false, "serve the telemetry endpoints over HTTPS using the [tls] section")
}

func runWatch(cmd *cobra.Command, _ []string, s *session) error {
	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	if _, err := s.bootstrap(ctx); err != nil {
		return err
	}

	watcher, err := config.NewWatcher(cfgFile, s.required, s.logger.Logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if watchFlags.listen != "" {
		srv, err := telemetryServer(s)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		if _, err := srv.Listen(); err != nil {
			return cli.NewCommandError("watch", err)
		}
		serveCtx, stopServing := context.WithCancel(ctx)
		served := make(chan error, 1)
		go func() { served <- srv.Serve(serveCtx) }()
		defer func() {
			stopServing()
			if err := <-served; err != nil {
				s.logger.Error("telemetry server failed", "error", err)
			}
		}()
	}

	var mu sync.Mutex
	err = watcher.Watch(ctx, func(ev config.DriftEvent) {
		s.collector.DriftObserved(ev.Verdict)

		missing := make([]string, len(ev.Missing))
		for i, sec := range ev.Missing {
			missing[i] = sec.String()
		}
		attrs := []any{"path", ev.Path, "verdict", ev.Verdict, "missing", missing}
		if ev.Err != nil {
			attrs = append(attrs, "error", ev.Err)
		}
		if ev.Verdict == config.DriftValid {
			s.logger.Info("configuration resource changed on disk; restart to apply", attrs...)
		} else {
			s.logger.Warn("configuration resource drifted from published state", attrs...)
		}

		fields := cli.Fields{
			{Key: "time", Value: time.Now().UTC().Format(time.RFC3339)},
			{Key: "verdict", Value: ev.Verdict},
			{Key: "missing", Value: missing},
		}
		if ev.Err != nil {
			fields = append(fields, cli.Field{Key: "error", Value: ev.Err.Error()})
		}

		mu.Lock()
		defer mu.Unlock()
		if err := s.print(fields); err != nil {
			s.logger.Error("failed to print drift event", "error", err)
		}
	})
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// telemetryServer builds the metrics and health server for watch.
func telemetryServer(s *session) (*server.Server, error) {
	r := s.resolver()
	checker := health.New(0)
	checker.SetTracer(s.tracer.Tracer())
	resolve.RegisterChecks(checker, r)

	cfg := server.Config{ListenAddress: watchFlags.listen}
	if watchFlags.listenTLS {
		paths, err := r.TLS()
		if err != nil {
			return nil, err
		}
		tlsConfig, err := securitytls.ServerConfig(paths.CertPath, paths.KeyPath, securitytls.Options{})
		if err != nil {
			return nil, err
		}
		cfg.TLS = tlsConfig
	}

	return server.New(cfg, server.NewTelemetryHandler(s.collector.Handler(), checker), s.logger.Logger), nil
}
