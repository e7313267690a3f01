package cmd

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/allocate"
	"github.com/firefly-engineering/rackline/internal/config"
	"github.com/firefly-engineering/rackline/internal/errors"
	"github.com/firefly-engineering/rackline/internal/logging"
	"github.com/firefly-engineering/rackline/internal/schema"
	"github.com/firefly-engineering/rackline/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Build a rack configuration interactively",
	Long: `Opens an interactive wizard that reads the bin container types from a
parts list and walks through capacities, shelf levels, label prefix and
label format. The result is written as a rack configuration file.

Use arrow keys or Tab to move between fields, Enter to accept a step,
Esc to go back.`,
	RunE: runSetup,
}

var (
	setupInput  string
	setupOutput string
)

func init() {
	setupCmd.Flags().StringVarP(&setupInput, "input", "i", "", "Parts list file, CSV or XLSX (required)")
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", "racks.toml", "Where to write the rack configuration")
	if err := setupCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	table, res, err := loadTable(setupInput)
	if err != nil {
		return err
	}

	items := res.Items(table.Rows)
	bins := allocate.DetectBins(items)

	if len(bins) == 0 {
		header, _ := res.Header(schema.FieldContainerType)
		return errors.ValidationError(fmt.Sprintf("no bin container types found in column %q", header))
	}

	logging.Debug("setup wizard started", "bins", len(bins))

	cfg, err := tui.RunSetup(bins)
	if err != nil {
		return fmt.Errorf("setup wizard error: %w", err)
	}
	if cfg == nil {
		logInfo("Setup cancelled.")
		return nil
	}

	if err := config.Save(setupOutput, cfg); err != nil {
		return errors.ConfigError("failed to write rack configuration", err)
	}

	logSuccess("Wrote %s", setupOutput)
	fmt.Printf("  Racks: %d\n", len(cfg.Racks))

	cmdStr := shellquote.Join("rackline", "generate", "-i", setupInput, "-c", setupOutput)
	fmt.Println("\nGenerate labels with:")
	fmt.Printf("  %s\n", cmdStr)

	return nil
}
