package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rackline",
	Short: "Line-side rack slot allocation and label printing",
	Long: `rackline assigns line-side rack slots to a parts list and prints the
matching bin labels.

A run takes two inputs:
  - A parts list (CSV or XLSX) with part number and container type columns
  - A rack configuration (TOML) describing racks, levels and capacities

and produces a PDF label sheet, optionally split per station, plus an
optional CSV of the assigned locations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
