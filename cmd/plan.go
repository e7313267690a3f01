package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/labels"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview slot assignments without writing labels",
	Long: `Runs the allocation and prints the resulting slot table instead of
rendering a PDF. Useful for checking a rack configuration against a
parts list before printing.`,
	RunE: runPlan,
}

var (
	planInput  string
	planConfig string
)

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "Parts list file, CSV or XLSX (required)")
	planCmd.Flags().StringVarP(&planConfig, "config", "c", "", "Rack configuration file (required)")
	if err := planCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := planCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := runPipeline(planInput, planConfig)
	if err != nil {
		return err
	}

	surfaceWarnings(p.Result)

	if len(p.Result.Assignments) == 0 {
		logWarning("No rows could be placed")
		return nil
	}

	w := tabwriter.NewWriter(out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART NO\tTYPE\tSTATION\tRACK\tLEVEL\tCELL\tKEY")
	fmt.Fprintln(w, "-------\t----\t-------\t----\t-----\t----\t---")

	for _, a := range p.Result.Assignments {
		station := a.Slot.Station
		if station == "" {
			station = "-"
		}
		rack := a.Slot.Prefix + " " + a.Slot.Digit1 + a.Slot.Digit2
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			a.Item.PartNo, a.Item.ContainerType, station, rack,
			a.Slot.Level, a.Slot.Cell, labels.Key(a.Slot))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logInfo("%d parts placed, %d empty slots", p.Result.Placed(), p.Result.Fillers())
	if n := len(p.Result.Unplaced); n > 0 {
		logWarning("%d rows not placed", n)
	}

	return nil
}
