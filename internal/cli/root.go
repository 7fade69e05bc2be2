package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the eztest CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eztest",
		Short: "eztest - a tiny embedded test runner",
		Long: `A tiny embedded test runner.

Runs named test functions, counts passed and failed expectations, times
each test and prints a summary of the whole run.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}
