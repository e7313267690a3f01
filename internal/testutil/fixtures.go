package testutil

import (
	"embed"
)

//go:embed fixtures/*.csv fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// PartsCSV returns the standard parts fixture: six rows over two bin
// types and two stations, one row unstationed.
func PartsCSV() ([]byte, error) {
	return LoadFixture("parts.csv")
}

// RackTOML returns the capacity-shaped rack config fixture.
func RackTOML() ([]byte, error) {
	return LoadFixture("racks.toml")
}

// GridRackTOML returns the count-based rack config fixture.
func GridRackTOML() ([]byte, error) {
	return LoadFixture("racks_grid.toml")
}

// InvalidRackTOML returns a rack config fixture that fails validation.
func InvalidRackTOML() ([]byte, error) {
	return LoadFixture("invalid_racks.toml")
}
