package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/rackline/internal/config"
	"github.com/firefly-engineering/rackline/internal/testutil"
)

// These tests run whole commands against real files and check what lands
// on disk and in the table output.

func TestGenerateCommand_WritesPDF(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	cfg := env.WriteRackConfig(testutil.SampleConfig())
	outDir := filepath.Join(env.TmpDir, "out")

	_, _, err := executeCommand("generate", "-i", parts, "-c", cfg, "-d", outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	pdf := filepath.Join(outDir, "parts-labels.pdf")
	info, err := os.Stat(pdf)
	if err != nil {
		t.Fatalf("Expected %s to exist: %v", pdf, err)
	}
	if info.Size() == 0 {
		t.Error("PDF should not be empty")
	}
}

func TestGenerateCommand_WritesCSV(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	cfg := env.WriteRackConfig(testutil.SampleConfig())
	outDir := filepath.Join(env.TmpDir, "out")

	_, _, err := executeCommand("generate", "-i", parts, "-c", cfg, "-d", outDir, "--csv")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "parts-locations.csv"))
	if err != nil {
		t.Fatalf("Expected locations CSV: %v", err)
	}
	csv := string(data)

	if !strings.Contains(csv, "11101-A") {
		t.Error("CSV should contain the first placed part")
	}
	if !strings.Contains(csv, "TR_0_1_A_01") {
		t.Error("CSV should contain the first location key")
	}
	if !strings.Contains(csv, "EMPTY") {
		t.Error("CSV should contain filler rows")
	}
}

func TestGenerateCommand_SplitStations(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	grouped := testutil.SampleConfig()
	grouped.GroupByStation = true
	cfg := env.WriteRackConfig(grouped)
	outDir := filepath.Join(env.TmpDir, "out")

	_, _, err := executeCommand("generate", "-i", parts, "-c", cfg, "-d", outDir, "--split-stations")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// One unstationed row plus stations ST10 and ST20
	for _, name := range []string{"parts-labels.pdf", "parts-ST10-labels.pdf", "parts-ST20-labels.pdf"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
}

func TestGenerateCommand_GridConfig(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	cfg := env.WriteFixture("racks_grid.toml")
	outDir := filepath.Join(env.TmpDir, "out")

	_, _, err := executeCommand("generate", "-i", parts, "-c", cfg, "-d", outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "parts-labels.pdf")); err != nil {
		t.Errorf("Expected grid-mode PDF: %v", err)
	}
}

func TestPlanCommand_PrintsTable(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	cfg := env.WriteRackConfig(testutil.SampleConfig())

	_, _, err := executeCommand("plan", "-i", parts, "-c", cfg)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	output := env.Output()

	if !strings.Contains(output, "PART NO") {
		t.Error("Plan should print the table header")
	}
	if !strings.Contains(output, "11101-A") {
		t.Error("Plan should list the first part")
	}
	if !strings.Contains(output, "TR 01") {
		t.Error("Plan should render the rack designator")
	}
	if !strings.Contains(output, "TR_0_1_A_01") {
		t.Error("Plan should render the location key")
	}
	if !strings.Contains(output, "EMPTY") {
		t.Error("Plan should list filler slots")
	}
}

func TestPlanCommand_UnstationedRowsDashed(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	grouped := testutil.SampleConfig()
	grouped.GroupByStation = true
	cfg := env.WriteRackConfig(grouped)

	_, _, err := executeCommand("plan", "-i", parts, "-c", cfg)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	output := env.Output()

	if !strings.Contains(output, "ST10") {
		t.Error("Plan should show station partitions")
	}
	// 11106-F has no station, so its row carries a dash
	if !strings.Contains(output, "11106-F  Bin A  -") {
		t.Errorf("Unstationed rows should show a dash, got:\n%s", output)
	}
}

func TestBinsCommand_CountsTypes(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")

	_, _, err := executeCommand("bins", "-i", parts)
	if err != nil {
		t.Fatalf("Bins failed: %v", err)
	}

	output := env.Output()

	if !strings.Contains(output, "TYPE") {
		t.Error("Bins should print the table header")
	}
	if !strings.Contains(output, "Bin A") || !strings.Contains(output, "Bin B") {
		t.Error("Bins should list both bin types")
	}
	if !strings.Contains(output, "4") || !strings.Contains(output, "2") {
		t.Errorf("Bins should count 4 and 2 items, got:\n%s", output)
	}
}

func TestBinsCommand_NoBins(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFile("totes.csv",
		"Part No,Container Type\n11101-A,Tote L\n")

	_, _, err := executeCommand("bins", "-i", parts)
	if err != nil {
		t.Fatalf("Bins should not fail on bin-free input: %v", err)
	}

	if strings.Contains(env.Output(), "TYPE") {
		t.Error("Bins should not print a table when nothing was detected")
	}
}

func TestColumnsCommand_ResolvesAll(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")

	_, _, err := executeCommand("columns", "-i", parts)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}

	output := env.Output()

	for _, field := range []string{"part_no", "description", "bus_model", "station", "container_type"} {
		if !strings.Contains(output, field) {
			t.Errorf("Columns should list field %q, got:\n%s", field, output)
		}
	}
	if !strings.Contains(output, "Container Type") {
		t.Error("Columns should show the matched header text")
	}
	if strings.Contains(output, "(not found") {
		t.Errorf("All fixture columns resolve, got:\n%s", output)
	}
}

func TestColumnsCommand_IgnoredHeaders(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFile("extra.csv",
		"Part No,Container Type,Supplier\n11101-A,Bin A,Acme\n")

	_, _, err := executeCommand("columns", "-i", parts)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}

	if !strings.Contains(env.Output(), "Ignored headers: Supplier") {
		t.Errorf("Columns should list unmatched headers, got:\n%s", env.Output())
	}
}

func TestGenerateCommand_OverflowStillWrites(t *testing.T) {
	env := testutil.NewTestEnv(t)
	defer env.Cleanup()

	parts := env.WriteFixture("parts.csv")
	tight := &config.Config{
		Prefix: "TR",
		Labels: config.LabelConfig{Format: config.FormatSingle},
		Racks: []config.RackConfig{
			{
				Name:     "Rack 01",
				Levels:   []string{"A"},
				Capacity: map[string]int{"Bin A": 2},
			},
		},
	}
	cfg := env.WriteRackConfig(tight)
	outDir := filepath.Join(env.TmpDir, "out")

	_, _, err := executeCommand("generate", "-i", parts, "-c", cfg, "-d", outDir, "--csv", "--include-unplaced")
	if err != nil {
		t.Fatalf("Overflow must not abort the run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "parts-labels.pdf")); err != nil {
		t.Errorf("Expected PDF despite overflow: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "parts-locations.csv"))
	if err != nil {
		t.Fatalf("Expected locations CSV: %v", err)
	}
	// Two Bin A rows overflow and all Bin B rows are unconfigured; with
	// --include-unplaced they appear without location columns
	if !strings.Contains(string(data), "11104-D,Hose clamp 25mm,EV12,ST20,Bin B,,,,,,") {
		t.Errorf("Unplaced rows should be carried without locations, got:\n%s", data)
	}
}
