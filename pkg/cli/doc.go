/*
Package cli provides command-line helpers used by the keystone command.

Command results are printed through a Formatter chosen by the --output
flag:

	formatter := cli.NewFormatter(cli.FormatJSON)
	result := cli.Fields{
		{Key: "endpoint", Value: conn.Endpoint},
		{Key: "database", Value: conn.Database},
	}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Errors returned from commands map to exit codes with ExitCode. A
ConfigError exits with ExitInvalidConfig; an ExitError carries its own
code.

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
