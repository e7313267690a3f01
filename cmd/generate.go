package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/errors"
	"github.com/firefly-engineering/rackline/internal/labels"
	"github.com/firefly-engineering/rackline/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate rack labels from a parts list",
	Long: `Runs the full pipeline: read the parts list, resolve its columns,
assign every part a rack slot, and write the label sheet as PDF.

Overflowing or unconfigured container types are reported as warnings and
their rows skipped; the run still produces labels for everything placed.`,
	RunE: runGenerate,
}

var (
	generateInput           string
	generateConfig          string
	generateOutDir          string
	generateCSV             bool
	generateSplitStations   bool
	generateIncludeUnplaced bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Parts list file, CSV or XLSX (required)")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Rack configuration file (required)")
	generateCmd.Flags().StringVarP(&generateOutDir, "out-dir", "d", ".", "Output directory")
	generateCmd.Flags().BoolVar(&generateCSV, "csv", false, "Also write the assigned locations as CSV")
	generateCmd.Flags().BoolVar(&generateSplitStations, "split-stations", false, "Write one PDF per station")
	generateCmd.Flags().BoolVar(&generateIncludeUnplaced, "include-unplaced", false, "Carry unplaced rows into the CSV without location columns")
	if err := generateCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := generateCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logging.Debug("starting label generation", "input", generateInput, "config", generateConfig)

	p, err := runPipeline(generateInput, generateConfig)
	if err != nil {
		return err
	}

	logInfo("Read %d rows from %s", len(p.Table.Rows), filepath.Base(generateInput))
	surfaceWarnings(p.Result)

	format := labels.Format(p.Config.Labels.Format)

	if len(p.Result.Assignments) == 0 {
		logWarning("Nothing to print: no rows could be placed")
	} else if err := writeLabels(p, format); err != nil {
		return err
	}

	if generateCSV {
		name := labels.CSVName(generateInput)
		if err := labels.WriteCSV(generateOutDir, name, p.Result, generateIncludeUnplaced); err != nil {
			return errors.RenderError("export", err)
		}
		logSuccess("Wrote %s", filepath.Join(generateOutDir, name))
	}

	fmt.Printf("  Parts placed: %d\n", p.Result.Placed())
	fmt.Printf("  Empty slots: %d\n", p.Result.Fillers())
	if n := len(p.Result.Unplaced); n > 0 {
		fmt.Printf("  Unplaced: %d\n", n)
	}

	return nil
}

// writeLabels writes either one PDF for the whole run or one per station.
func writeLabels(p *pipeline, format labels.Format) error {
	if !generateSplitStations {
		pages := labels.Compose(p.Result.Assignments, format)
		name := labels.PDFName(generateInput, "")
		if err := labels.WritePDF(generateOutDir, name, pages, format); err != nil {
			return errors.RenderError("write", err)
		}
		logSuccess("Wrote %s", filepath.Join(generateOutDir, name))
		return nil
	}

	stations, groups := labels.ByStation(p.Result.Assignments)
	for _, station := range stations {
		pages := labels.Compose(groups[station], format)
		name := labels.PDFName(generateInput, station)
		if err := labels.WritePDF(generateOutDir, name, pages, format); err != nil {
			return errors.RenderError("write", err)
		}
		logSuccess("Wrote %s", filepath.Join(generateOutDir, name))
	}
	return nil
}
