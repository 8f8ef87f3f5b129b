// Package cli wires the ohmoracle command tree: flag parsing, logging
// setup, catalog construction, and result rendering around the divider
// search engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations. It is replaced by
// setupLogging once the root command runs.
var logger = zerolog.Nop() //nolint:gochecknoglobals // set once during PersistentPreRunE

// NewRootCmd creates the root Cobra command for the ohmoracle CLI.
// Logging and configuration are initialized in PersistentPreRunE so every
// subcommand inherits a context carrying the logger and a trace ID.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ohmoracle",
		Short:   "Voltage divider resistor calculator",
		Long:    "ohmoracle picks the pair of standard resistor values whose voltage divider output is closest to a target voltage.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (console, json)")
	cmd.PersistentFlags().String("config", "", "path to config file (default: user config dir)")

	cmd.AddCommand(NewDividerCmd(), newSeriesCmd())

	return cmd
}

const rootCmdExample = `  # Best E6 pair for a 3.3 V tap from a 5 V rail
  ohmoracle divider --vin 5 --vout 3.3

  # Finer granularity with the E192 series
  ohmoracle divider --vin 12 --vout 5 --standard E192

  # Search your own parts drawer instead of a standard series
  ohmoracle divider --vin 9 --vout 3.3 --csv drawer.csv

  # Explore interactively
  ohmoracle divider --vin 5 --vout 3.3 --interactive

  # Inspect the value catalogs
  ohmoracle series list
  ohmoracle series show E12`
