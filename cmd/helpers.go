package cmd

import (
	"io"

	"github.com/firefly-engineering/rackline/internal/allocate"
	"github.com/firefly-engineering/rackline/internal/app"
	"github.com/firefly-engineering/rackline/internal/config"
	"github.com/firefly-engineering/rackline/internal/errors"
	"github.com/firefly-engineering/rackline/internal/ingest"
	"github.com/firefly-engineering/rackline/internal/logging"
	"github.com/firefly-engineering/rackline/internal/schema"
)

// out returns the writer for tabular command output.
// This is a helper to reduce repetition in commands.
func out() io.Writer {
	return app.Default.Out
}

// loadTable reads a parts file and resolves its columns. Unresolvable
// required columns are fatal schema errors; everything else that goes
// wrong while reading is an ingest error.
func loadTable(path string) (*ingest.Table, *schema.Resolution, error) {
	table, res, err := app.Default.LoadTable(path)
	if err != nil {
		var missing *schema.MissingColumnError
		if errors.As(err, &missing) {
			return nil, nil, errors.SchemaError(err)
		}
		return nil, nil, errors.IngestError(path, err)
	}
	return table, res, nil
}

// loadRackConfig loads and validates the rack configuration file.
func loadRackConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.ConfigError("invalid rack configuration", err)
	}
	return cfg, nil
}

// pipeline bundles everything a run produces up to allocation.
type pipeline struct {
	Table  *ingest.Table
	Schema *schema.Resolution
	Items  []allocate.Item
	Config *config.Config
	Result *allocate.Result
}

// runPipeline executes ingest, schema resolution and allocation for the
// given parts file and rack configuration.
func runPipeline(inputPath, configPath string) (*pipeline, error) {
	table, res, err := loadTable(inputPath)
	if err != nil {
		return nil, err
	}

	cfg, err := loadRackConfig(configPath)
	if err != nil {
		return nil, err
	}

	items := res.Items(table.Rows)
	logging.Debug("allocating", "items", len(items), "racks", len(cfg.Racks), "mode", cfg.Mode())

	racks, opts := cfg.Allocation()
	result, err := allocate.Run(items, racks, opts)
	if err != nil {
		return nil, errors.ConfigError("allocation failed", err)
	}

	return &pipeline{
		Table:  table,
		Schema: res,
		Items:  items,
		Config: cfg,
		Result: result,
	}, nil
}

// surfaceWarnings prints allocation warnings. Warnings never abort a run.
func surfaceWarnings(result *allocate.Result) {
	for _, w := range result.Warnings {
		logWarning("%s", w)
	}
}
