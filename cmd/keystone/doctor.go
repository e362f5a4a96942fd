package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/resolve"
	securitytls "tickline-hq/keystone/pkg/security/tls"
	"tickline-hq/keystone/pkg/telemetry/health"
)

var doctorFlags struct {
	timeout  time.Duration
	skipCert bool
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Resolve every descriptor and report what is unusable",
	Long: `Bootstrap the configuration resource, then run every resolver as a
health check: both storage roles, every cache purpose in both modes, every
named server, TLS, messaging and upstream. Unless --skip-cert is given, the
TLS key pair is also loaded and its certificate validity checked.

Exit codes:
  0  every check passed
  2  the resource could not be bootstrapped
  3  at least one check failed

Examples:
  keystone doctor
  keystone doctor --output json --trace-endpoint localhost:4317 --trace-insecure`,
	Args: cobra.NoArgs,
	RunE: withSession(runDoctor),
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().DurationVar(&doctorFlags.timeout, "timeout", health.DefaultCheckTimeout, "per-check timeout")
	doctorCmd.Flags().BoolVar(&doctorFlags.skipCert, "skip-cert", false, "do not load and validate the TLS certificate")
}

// doctorReport is the doctor command's result.
type doctorReport struct {
	Status      string                        `json:"status"`
	Generation  string                        `json:"generation"`
	Checks      map[string]health.CheckResult `json:"checks"`
	CertWarning string                        `json:"cert_warning,omitempty"`
}

// WriteText prints one line per check, failures last.
func (r doctorReport) WriteText(w io.Writer) error {
	names := make([]string, 0, len(r.Checks))
	for name := range r.Checks {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		fi := r.Checks[names[i]].Status != health.StatusOK
		fj := r.Checks[names[j]].Status != health.StatusOK
		if fi != fj {
			return fj
		}
		return names[i] < names[j]
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range names {
		result := r.Checks[name]
		mark := "ok"
		if result.Status != health.StatusOK {
			mark = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, name, result.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.CertWarning != "" {
		fmt.Fprintf(w, "warning: %s\n", r.CertWarning)
	}
	_, err := fmt.Fprintf(w, "status: %s (generation %s)\n", r.Status, r.Generation)
	return err
}

func runDoctor(cmd *cobra.Command, _ []string, s *session) error {
	ctx, span := s.tracer.Start(cmd.Context(), "keystone.doctor")
	defer span.End()

	report, err := s.bootstrap(ctx)
	if err != nil {
		return err
	}

	r := s.resolver()
	checker := health.New(doctorFlags.timeout)
	checker.SetTracer(s.tracer.Tracer())
	resolve.RegisterChecks(checker, r)

	var certWarning atomic.Pointer[string]
	if !doctorFlags.skipCert {
		checker.RegisterCheck("tls.certificate", func(context.Context) error {
			paths, err := r.TLS()
			if err != nil {
				return err
			}
			_, warning, err := securitytls.Inspect(paths.CertPath, paths.KeyPath)
			certWarning.Store(&warning)
			return err
		})
	}

	status := checker.CheckReadiness(ctx)
	for _, name := range status.Failed() {
		s.logger.Warn("check failed", "check", name, "error", status.Checks[name].Message)
	}

	result := doctorReport{
		Status:     status.Status,
		Generation: report.Generation,
		Checks:     status.Checks,
	}
	if w := certWarning.Load(); w != nil {
		result.CertWarning = *w
	}
	if err := s.print(result); err != nil {
		return err
	}

	if status.Status != health.StatusReady {
		return cli.NewExitError(cli.ExitUnhealthy, nil)
	}
	return nil
}
