package app

import (
	"io"
	"os"

	"github.com/firefly-engineering/rackline/internal/ingest"
	"github.com/firefly-engineering/rackline/internal/schema"
)

// App holds the dependencies commands share.
type App struct {
	// Rules drive schema resolution for every command that reads a
	// data file.
	Rules []schema.Rule

	// Out receives table and preview output. Status lines go through
	// internal/logging instead.
	Out io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithRules sets custom schema resolution rules
func WithRules(rules []schema.Rule) Option {
	return func(a *App) {
		a.Rules = rules
	}
}

// WithOut sets a custom output writer
func WithOut(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Rules: schema.DefaultRules(),
		Out:   os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadTable ingests a data file and resolves its columns against the
// app's rules. Every command that reads part data starts here.
func (a *App) LoadTable(path string) (*ingest.Table, *schema.Resolution, error) {
	table, err := ingest.Open(path)
	if err != nil {
		return nil, nil, err
	}

	resolution, err := schema.Resolve(table.Headers, a.Rules)
	if err != nil {
		return nil, nil, err
	}

	return table, resolution, nil
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
