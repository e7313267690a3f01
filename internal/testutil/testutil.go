// Package testutil provides test utilities for command tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/rackline/internal/app"
	"github.com/firefly-engineering/rackline/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T       *testing.T
	TmpDir  string
	Out     *bytes.Buffer
	App     *app.App
	cleanup func()
}

// NewTestEnv creates a test environment whose app default writes tabular
// output into a buffer instead of stdout
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	out := &bytes.Buffer{}
	testApp := app.New(app.WithOut(out))

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	return &TestEnv{
		T:      t,
		TmpDir: t.TempDir(),
		Out:    out,
		App:    testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// Output returns everything the app wrote so far
func (e *TestEnv) Output() string {
	return e.Out.String()
}

// WriteFile writes a file under the temp dir and returns its path
func (e *TestEnv) WriteFile(name, content string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteFixture copies an embedded fixture into the temp dir and returns
// its path
func (e *TestEnv) WriteFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return e.WriteFile(name, string(data))
}

// WriteRackConfig saves a rack configuration into the temp dir and
// returns its path
func (e *TestEnv) WriteRackConfig(cfg *config.Config) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "racks.toml")
	if err := config.Save(path, cfg); err != nil {
		e.T.Fatalf("Failed to save rack config: %v", err)
	}
	return path
}

// SampleConfig returns a two-rack capacity configuration matching the
// parts fixture
func SampleConfig() *config.Config {
	return &config.Config{
		Prefix: "TR",
		Labels: config.LabelConfig{Format: config.FormatSingle},
		Racks: []config.RackConfig{
			{
				Name:     "Rack 01",
				Levels:   []string{"A", "B", "C", "D"},
				Capacity: map[string]int{"Bin A": 2},
			},
			{
				Name:     "Rack 02",
				Levels:   []string{"A", "B"},
				Capacity: map[string]int{"Bin B": 3},
			},
		},
	}
}
