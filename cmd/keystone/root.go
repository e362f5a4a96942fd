package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/config"
)

var (
	// Global flags
	cfgFile   string
	schema    string
	verbose   bool
	logFormat string
	logFile   string
	output    string

	traceEndpoint    string
	traceInsecure    bool
	traceSampler     string
	traceSampleRatio float64
)

var rootCmd = &cobra.Command{
	Use:   "keystone",
	Short: "Keystone - configuration bootstrap and connection resolution",
	Long: `Keystone owns the platform's configuration resource (config.toml).

It creates the resource from defaults when it is missing, fills in any
missing sections without touching the ones an operator wrote, publishes the
result once, and resolves connection descriptors for the analytics store,
the cache, the message broker, the upstream broker API, internal servers and
TLS from it.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the code its error maps to.
func Execute() {
	err := rootCmd.Execute()
	var exitErr *cli.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.Err == nil) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "config.toml", "configuration resource path (.toml, .yaml or .yml)")
	flags.StringVar(&schema, "schema", "v2", "required-section schema version: v1, v2")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&logFormat, "log-format", "text", "log format: text, json")
	flags.StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	flags.StringVarP(&output, "output", "o", "text", "output format: text, json")

	flags.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP gRPC collector address; empty disables tracing")
	flags.BoolVar(&traceInsecure, "trace-insecure", false, "connect to the collector without TLS")
	flags.StringVar(&traceSampler, "trace-sampler", "always", "trace sampler: always, never, ratio")
	flags.Float64Var(&traceSampleRatio, "trace-sample-ratio", 1.0, "fraction of traces sampled with --trace-sampler ratio")
}

func requiredSet() (config.RequiredSet, error) {
	switch schema {
	case "v1":
		return config.SchemaV1, nil
	case "v2", "":
		return config.SchemaV2, nil
	default:
		return nil, fmt.Errorf("unknown schema version %q (want v1 or v2)", schema)
	}
}
