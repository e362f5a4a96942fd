package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/config"
	"tickline-hq/keystone/pkg/resolve"
	"tickline-hq/keystone/pkg/telemetry/logging"
	"tickline-hq/keystone/pkg/telemetry/metrics"
	"tickline-hq/keystone/pkg/telemetry/tracing"
)

// session is the per-invocation wiring shared by every command.
type session struct {
	logger    *logging.Logger
	tracer    *tracing.Tracer
	collector *metrics.Collector
	required  config.RequiredSet
	config    *config.Context
	formatter cli.Formatter
	out       io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	required, err := requiredSet()
	if err != nil {
		return nil, err
	}
	format, err := cli.ParseFormat(output)
	if err != nil {
		return nil, err
	}
	if traceEndpoint != "" {
		if err := tracing.ValidateSamplingConfig(tracing.SamplingConfig{
			Strategy: traceSampler,
			Ratio:    traceSampleRatio,
		}); err != nil {
			return nil, err
		}
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: logFormat,
		File:   logFile,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	tracer, err := tracing.New(tracing.Config{
		Enabled:        traceEndpoint != "",
		Endpoint:       traceEndpoint,
		Insecure:       traceInsecure,
		Sampler:        traceSampler,
		SampleRatio:    traceSampleRatio,
		ServiceVersion: Version,
	})
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &session{
		logger:    logger,
		tracer:    tracer,
		collector: metrics.NewCollector(metrics.Options{}, nil),
		required:  required,
		config:    config.NewContext(),
		formatter: cli.NewFormatter(format),
		out:       cmd.OutOrStdout(),
	}, nil
}

// bootstrap creates or heals the resource and publishes it.
func (s *session) bootstrap(ctx context.Context) (*config.Report, error) {
	_, span := s.tracer.Start(ctx, "config.bootstrap",
		trace.WithAttributes(attribute.String("config.path", cfgFile)))
	defer span.End()

	report, err := config.NewBootstrapper(s.config,
		config.WithLogger(s.logger.Logger),
		config.WithRecorder(s.collector),
		config.WithRequiredSet(s.required),
	).Init(cfgFile)
	tracing.SetStatus(span, err)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}
	span.SetAttributes(
		attribute.String("config.generation", report.Generation),
		attribute.Bool("config.created", report.Created),
		attribute.Int("config.healed", len(report.Healed)),
	)
	return report, nil
}

func (s *session) resolver() *resolve.Resolver {
	return resolve.New(s.config,
		resolve.WithLogger(s.logger.Logger),
		resolve.WithRecorder(s.collector),
	)
}

func (s *session) print(data any) error {
	return s.formatter.FormatTo(s.out, data)
}

func (s *session) close(ctx context.Context) {
	if err := s.tracer.Shutdown(ctx); err != nil {
		s.logger.Warn("failed to flush traces", "error", err)
	}
	_ = s.logger.Close()
}

// withSession adapts a command body that needs a session into a RunE.
func withSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close(context.WithoutCancel(cmd.Context()))
		return fn(cmd, args, s)
	}
}
