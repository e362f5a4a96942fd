package main

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"tickline-hq/keystone/pkg/cli"
	"tickline-hq/keystone/pkg/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing sections without healing",
	Long: `Load the configuration resource and report every required section it
lacks. Unlike init, check never writes the file.

Exit codes:
  0  every required section is present
  2  the resource is unreadable, malformed or incomplete

Examples:
  keystone check
  keystone check -c /etc/tickline/config.toml --output json`,
	Args: cobra.NoArgs,
	RunE: withSession(runCheck),
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string, s *session) error {
	doc, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewConfigError(cfgFile, err)
	}

	var present, missing []string
	for _, sec := range s.required {
		if doc.Has(sec) {
			present = append(present, sec.String())
		} else {
			missing = append(missing, sec.String())
		}
	}

	status := "complete"
	validateErr := config.ValidateAll(doc, s.required)
	if validateErr != nil {
		status = "incomplete"
		var merr *multierror.Error
		if errors.As(validateErr, &merr) {
			for _, e := range merr.Errors {
				s.logger.Warn("required section missing", "path", cfgFile, "error", e)
			}
		}
	}

	if err := s.print(cli.Fields{
		{Key: "path", Value: cfgFile},
		{Key: "status", Value: status},
		{Key: "present", Value: present},
		{Key: "missing", Value: missing},
	}); err != nil {
		return err
	}

	if validateErr != nil {
		return cli.NewExitError(cli.ExitInvalidConfig, nil)
	}
	return nil
}
