package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rackline/internal/app"
	"github.com/firefly-engineering/rackline/internal/errors"
	"github.com/firefly-engineering/rackline/internal/ingest"
	"github.com/firefly-engineering/rackline/internal/schema"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show how spreadsheet headers resolve to fields",
	Long: `Reads only the header row of a parts list and prints which column
each field resolved to. Use this when a file fails column detection to
see what the matcher found.`,
	RunE: runColumns,
}

var columnsInput string

func init() {
	columnsCmd.Flags().StringVarP(&columnsInput, "input", "i", "", "Parts list file, CSV or XLSX (required)")
	if err := columnsCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	table, err := ingest.Open(columnsInput)
	if err != nil {
		return errors.IngestError(columnsInput, err)
	}

	// Resolve with every rule optional so the table still prints when a
	// required column is missing.
	rules := app.Default.Rules
	relaxed := make([]schema.Rule, len(rules))
	for i, rule := range rules {
		relaxed[i] = rule
		relaxed[i].Required = false
	}
	res, err := schema.Resolve(table.Headers, relaxed)
	if err != nil {
		return errors.SchemaError(err)
	}

	w := tabwriter.NewWriter(out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tCOLUMN\tHEADER")
	fmt.Fprintln(w, "-----\t------\t------")

	claimed := make(map[int]bool)
	var missing []schema.Field
	for _, rule := range rules {
		col, ok := res.Column(rule.Field)
		if !ok {
			marker := "(not found)"
			if rule.Required {
				marker = "(not found, required)"
				missing = append(missing, rule.Field)
			}
			fmt.Fprintf(w, "%s\t-\t%s\n", rule.Field, marker)
			continue
		}
		claimed[col] = true
		header, _ := res.Header(rule.Field)
		fmt.Fprintf(w, "%s\t%d\t%s\n", rule.Field, col+1, header)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	var ignored []string
	for i, h := range table.Headers {
		if !claimed[i] {
			ignored = append(ignored, h)
		}
	}
	if len(ignored) > 0 {
		fmt.Fprintf(out(), "\nIgnored headers: %s\n", strings.Join(ignored, ", "))
	}

	if len(missing) > 0 {
		return errors.SchemaError(&schema.MissingColumnError{Fields: missing})
	}

	logSuccess("All required columns resolved")
	return nil
}
