package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

var binsCmd = &cobra.Command{
	Use:   "bins",
	Short: "List the bin container types found in a parts list",
	Long: `Reads a parts list and counts the rows per bin container type.
Only container types whose name contains "bin" are listed; see the
ignored count for everything else.`,
	RunE: runBins,
}

var binsInput string

func init() {
	binsCmd.Flags().StringVarP(&binsInput, "input", "i", "", "Parts list file, CSV or XLSX (required)")
	if err := binsCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(binsCmd)
}

func runBins(cmd *cobra.Command, args []string) error {
	table, res, err := loadTable(binsInput)
	if err != nil {
		return err
	}

	items := res.Items(table.Rows)
	bins := allocate.DetectBins(items)

	if len(bins) == 0 {
		logWarning("No bin container types found in %s", binsInput)
		return nil
	}

	logInfo("Detected %d bin types", len(bins))

	w := tabwriter.NewWriter(out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tITEMS")
	fmt.Fprintln(w, "----\t-----")

	binned := 0
	for _, b := range bins {
		fmt.Fprintf(w, "%s\t%d\n", b.Type, b.Count)
		binned += b.Count
	}
	if err := w.Flush(); err != nil {
		return err
	}

	typed := 0
	for _, it := range items {
		if it.ContainerType != "" {
			typed++
		}
	}
	if other := typed - binned; other > 0 {
		logInfo("%d items use non-bin container types", other)
	}

	return nil
}
