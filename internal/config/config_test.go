package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "racks.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	if config.Prefix != DefaultPrefix {
		t.Errorf("Prefix = %q, want %q", config.Prefix, DefaultPrefix)
	}
	if config.Labels.Format != FormatSingle {
		t.Errorf("Labels.Format = %q, want %q", config.Labels.Format, FormatSingle)
	}
	if len(config.Racks) != 0 {
		t.Errorf("len(Racks) = %d, want 0", len(config.Racks))
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
prefix = "LS"
group_by_station = true

[labels]
format = "multi"

[[rack]]
name = "Rack 01"
levels = ["A", "B", "C", "D"]

[rack.capacity]
"Bin A" = 5
"Bin B" = 3
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Prefix != "LS" {
		t.Errorf("Prefix = %q, want %q", config.Prefix, "LS")
	}
	if !config.GroupByStation {
		t.Error("GroupByStation = false, want true")
	}
	if config.Labels.Format != FormatMulti {
		t.Errorf("Labels.Format = %q, want %q", config.Labels.Format, FormatMulti)
	}
	if len(config.Racks) != 1 {
		t.Fatalf("len(Racks) = %d, want 1", len(config.Racks))
	}

	rack := config.Racks[0]
	if rack.Name != "Rack 01" {
		t.Errorf("Name = %q, want %q", rack.Name, "Rack 01")
	}
	if len(rack.Levels) != 4 {
		t.Errorf("len(Levels) = %d, want 4", len(rack.Levels))
	}
	if rack.Capacity["Bin A"] != 5 {
		t.Errorf(`Capacity["Bin A"] = %d, want 5`, rack.Capacity["Bin A"])
	}
	if rack.Capacity["Bin B"] != 3 {
		t.Errorf(`Capacity["Bin B"] = %d, want 3`, rack.Capacity["Bin B"])
	}
	if config.Mode() != allocate.ModeLevelFill {
		t.Errorf("Mode = %v, want %v", config.Mode(), allocate.ModeLevelFill)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[[rack]]
name = "Rack 1"
levels = ["A"]

[rack.capacity]
"Bin A" = 2
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Prefix != DefaultPrefix {
		t.Errorf("Prefix = %q, want default %q", config.Prefix, DefaultPrefix)
	}
	if config.Labels.Format != FormatSingle {
		t.Errorf("Labels.Format = %q, want default %q", config.Labels.Format, FormatSingle)
	}
	if config.GroupByStation {
		t.Error("GroupByStation = true, want false")
	}
}

func TestLoad_GridShape(t *testing.T) {
	path := writeConfig(t, `
[[rack]]
name = "Rack 1"
levels = ["A", "B"]

[rack.cells]
A = 4
B = 4

[rack.bins]
"Bin A" = 6
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Mode() != allocate.ModeSlotGrid {
		t.Errorf("Mode = %v, want %v", config.Mode(), allocate.ModeSlotGrid)
	}
	if config.Racks[0].Cells["A"] != 4 {
		t.Errorf(`Cells["A"] = %d, want 4`, config.Racks[0].Cells["A"])
	}
	if config.Racks[0].Bins["Bin A"] != 6 {
		t.Errorf(`Bins["Bin A"] = %d, want 6`, config.Racks[0].Bins["Bin A"])
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Expected error for nonexistent config, got nil")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "not == valid toml")

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for invalid TOML, got nil")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
prefiks = "TR"

[[rack]]
name = "Rack 1"
levels = ["A"]

[rack.capacity]
"Bin A" = 1
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), "prefiks") {
		t.Errorf("error = %v, want mention of the unknown key", err)
	}
}

func TestLoad_DuplicateRackName(t *testing.T) {
	path := writeConfig(t, `
[[rack]]
name = "Rack 1"
levels = ["A"]

[rack.capacity]
"Bin A" = 1

[[rack]]
name = "Rack 1"
levels = ["A"]

[rack.capacity]
"Bin A" = 1
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for duplicate rack name, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate rack name") {
		t.Errorf("error = %v, want duplicate rack name", err)
	}
}

func TestConfigValidate(t *testing.T) {
	singleRack := []RackConfig{
		{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid capacity shape",
			config:  Config{Labels: LabelConfig{Format: FormatSingle}, Racks: singleRack},
			wantErr: false,
		},
		{
			name: "valid grid shape",
			config: Config{Labels: LabelConfig{Format: FormatMulti}, Racks: []RackConfig{
				{Name: "Rack 1", Levels: []string{"A"}, Cells: map[string]int{"A": 4}, Bins: map[string]int{"Bin A": 3}},
			}},
			wantErr: false,
		},
		{
			name:    "no racks",
			config:  Config{Labels: LabelConfig{Format: FormatSingle}},
			wantErr: true,
		},
		{
			name:    "bad label format",
			config:  Config{Labels: LabelConfig{Format: "fancy"}, Racks: singleRack},
			wantErr: true,
		},
		{
			name: "mixed shapes across racks",
			config: Config{Labels: LabelConfig{Format: FormatSingle}, Racks: []RackConfig{
				{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
				{Name: "Rack 2", Levels: []string{"A"}, Cells: map[string]int{"A": 4}, Bins: map[string]int{"Bin A": 3}},
			}},
			wantErr: true,
		},
		{
			name: "grid without bins",
			config: Config{Labels: LabelConfig{Format: FormatSingle}, Racks: []RackConfig{
				{Name: "Rack 1", Levels: []string{"A"}, Cells: map[string]int{"A": 4}},
			}},
			wantErr: true,
		},
		{
			name: "embedded numbers collide",
			config: Config{Labels: LabelConfig{Format: FormatSingle}, Racks: []RackConfig{
				{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
				{Name: "Rack 01", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
			}},
			wantErr: true,
		},
		{
			name: "ordinal collides with embedded number",
			config: Config{Labels: LabelConfig{Format: FormatSingle}, Racks: []RackConfig{
				{Name: "Inbound", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
				{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRackConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		rack    RackConfig
		wantErr bool
	}{
		{
			name:    "valid capacity rack",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A", "B"}, Capacity: map[string]int{"Bin A": 5}},
			wantErr: false,
		},
		{
			name:    "valid grid rack",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A"}, Cells: map[string]int{"A": 4}, Bins: map[string]int{"Bin A": 2}},
			wantErr: false,
		},
		{
			name:    "grid rack without bins",
			rack:    RackConfig{Name: "Rack 2", Levels: []string{"A"}, Cells: map[string]int{"A": 4}},
			wantErr: false,
		},
		{
			name:    "missing name",
			rack:    RackConfig{Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 5}},
			wantErr: true,
		},
		{
			name:    "no levels",
			rack:    RackConfig{Name: "Rack 1", Capacity: map[string]int{"Bin A": 5}},
			wantErr: true,
		},
		{
			name:    "blank level",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A", ""}, Capacity: map[string]int{"Bin A": 5}},
			wantErr: true,
		},
		{
			name:    "duplicate level",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A", "A"}, Capacity: map[string]int{"Bin A": 5}},
			wantErr: true,
		},
		{
			name: "capacity mixed with cells",
			rack: RackConfig{Name: "Rack 1", Levels: []string{"A"},
				Capacity: map[string]int{"Bin A": 5}, Cells: map[string]int{"A": 4}},
			wantErr: true,
		},
		{
			name:    "no shape at all",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A"}},
			wantErr: true,
		},
		{
			name:    "bins without cells",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A"}, Bins: map[string]int{"Bin A": 2}},
			wantErr: true,
		},
		{
			name:    "blank container type in capacity",
			rack:    RackConfig{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"": 5}},
			wantErr: true,
		},
		{
			name: "blank container type in bins",
			rack: RackConfig{Name: "Rack 1", Levels: []string{"A"},
				Cells: map[string]int{"A": 4}, Bins: map[string]int{" ": 2}},
			wantErr: true,
		},
		{
			name: "cells for unknown level",
			rack: RackConfig{Name: "Rack 1", Levels: []string{"A"},
				Cells: map[string]int{"B": 4}, Bins: map[string]int{"Bin A": 2}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rack.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DigitCollisionMessage(t *testing.T) {
	config := Config{
		Labels: LabelConfig{Format: FormatSingle},
		Racks: []RackConfig{
			{Name: "Rack 1", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
			{Name: "Rack 01", Levels: []string{"A"}, Capacity: map[string]int{"Bin A": 2}},
		},
	}

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected error for colliding rack numbers, got nil")
	}
	if !strings.Contains(err.Error(), "share rack number 01") {
		t.Errorf("error = %v, want shared rack number 01", err)
	}
}

func TestAllocation(t *testing.T) {
	config := Config{
		Prefix:         "LS",
		GroupByStation: true,
		Labels:         LabelConfig{Format: FormatSingle},
		Racks: []RackConfig{
			{Name: "Rack 1", Levels: []string{"A", "B"}, Capacity: map[string]int{"Bin A": 5}},
			{Name: "Rack 2", Levels: []string{"A"}, Capacity: map[string]int{"Bin B": 3}},
		},
	}

	racks, opts := config.Allocation()

	if len(racks) != 2 {
		t.Fatalf("len(racks) = %d, want 2", len(racks))
	}
	if racks[0].Name != "Rack 1" || racks[1].Name != "Rack 2" {
		t.Errorf("rack names = %q, %q", racks[0].Name, racks[1].Name)
	}
	if racks[0].Capacity["Bin A"] != 5 {
		t.Errorf(`racks[0].Capacity["Bin A"] = %d, want 5`, racks[0].Capacity["Bin A"])
	}
	if !reflect.DeepEqual(racks[1].Levels, []string{"A"}) {
		t.Errorf("racks[1].Levels = %v, want [A]", racks[1].Levels)
	}
	if opts.Prefix != "LS" {
		t.Errorf("opts.Prefix = %q, want %q", opts.Prefix, "LS")
	}
	if !opts.GroupByStation {
		t.Error("opts.GroupByStation = false, want true")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	original := &Config{
		Prefix:         "TR",
		GroupByStation: true,
		Labels:         LabelConfig{Format: FormatMulti},
		Racks: []RackConfig{
			{Name: "Rack 01", Levels: []string{"A", "B", "C"}, Capacity: map[string]int{"Bin A": 5, "Bin B": 3}},
			{Name: "Rack 02", Levels: []string{"A", "B"}, Capacity: map[string]int{"Bin C": 4}},
		},
	}

	path := filepath.Join(t.TempDir(), "racks.toml")
	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, original)
	}
}

func TestSave_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racks.toml")

	if err := Save(path, &Config{}); err == nil {
		t.Fatal("Expected error for invalid config, got nil")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save wrote a file for an invalid config")
	}
}
