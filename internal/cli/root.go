// Package cli implements the fleet command-line interface: the cobra command
// tree, configuration loading and the wiring of the collection, its observers
// and the interactive shell.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit code for any command error. The interactive shell itself always
// exits with 0.
const exitFailure = 1

// options holds global flag values shared by all subcommands.
type options struct {
	configDir string
	logLevel  string
	noColor   bool
}

// NewRootCmd creates the top-level "fleet" command with global flags and all
// subcommands registered. Running it without a subcommand starts the shell.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fleet",
		Short: "Interactive inventory of transport vehicles",
		Long: `Fleet keeps an in-memory inventory of transports (generic transports,
airplanes, cars and ships) and lets you add, remove, list and compare them
from an interactive menu.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/fleet)")
	root.PersistentFlags().StringVar(&opts.logLevel, flagLogLevel, "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newShellCmd(opts))
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitFailure)
	}
}
