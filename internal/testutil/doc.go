// Package testutil provides test fixtures and utilities.
//
// This package contains embedded data fixtures and a test environment
// for command tests.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/parts.csv          - six-row parts list, two bin types
//	fixtures/racks.toml         - capacity-shaped rack config
//	fixtures/racks_grid.toml    - count-based rack config
//	fixtures/invalid_racks.toml - config that fails validation
//
// # Test Environment
//
// NewTestEnv swaps the app default for one that writes into a buffer and
// hands out a temp dir for input and output files:
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//
//	parts := env.WriteFixture("parts.csv")
//	racks := env.WriteRackConfig(testutil.SampleConfig())
//	// run the command under test, then inspect env.Output()
//
// # Raw Fixture Access
//
// For custom parsing or testing edge cases:
//
//	data, err := testutil.LoadFixture("parts.csv")
package testutil
