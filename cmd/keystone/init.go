package main

import (
	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or heal the configuration resource",
	Long: `Run the configuration bootstrap once and report what it did.

If the resource does not exist it is written from defaults. If it lacks
required sections, the defaults for exactly those sections are added and the
file is rewritten atomically. Sections that are already present are never
changed.

Examples:
  # Bootstrap ./config.toml
  keystone init

  # Bootstrap a YAML resource against the two-section v1 schema
  keystone init -c deploy/config.yaml --schema v1`,
	Args: cobra.NoArgs,
	RunE: withSession(runInit),
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string, s *session) error {
	report, err := s.bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	healed := make([]string, len(report.Healed))
	for i, sec := range report.Healed {
		healed[i] = sec.String()
	}
	return s.print(cli.Fields{
		{Key: "path", Value: report.Path},
		{Key: "format", Value: config.FormatForPath(report.Path)},
		{Key: "created", Value: report.Created},
		{Key: "healed", Value: healed},
		{Key: "generation", Value: report.Generation},
	})
}
