package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

const (
	// DefaultPrefix is the painted rack designator used when the
	// configuration file does not set one.
	DefaultPrefix = "TR"

	// FormatSingle prints one part per label.
	FormatSingle = "single"
	// FormatMulti prints two parts per label.
	FormatMulti = "multi"
)

// Config is the rack configuration file.
type Config struct {
	Prefix         string       `toml:"prefix"`
	GroupByStation bool         `toml:"group_by_station"`
	Labels         LabelConfig  `toml:"labels"`
	Racks          []RackConfig `toml:"rack"`
}

// LabelConfig selects the printed label variant.
type LabelConfig struct {
	Format string `toml:"format"`
}

// RackConfig describes one physical rack. Capacity maps container types to
// bins per level; Cells and Bins describe a physical cell grid with total
// bin counts instead. A rack carries exactly one of the two shapes.
type RackConfig struct {
	Name     string         `toml:"name"`
	Levels   []string       `toml:"levels"`
	Capacity map[string]int `toml:"capacity,omitempty"`
	Cells    map[string]int `toml:"cells,omitempty"`
	Bins     map[string]int `toml:"bins,omitempty"`
}

// Default returns a configuration seeded with the standard prefix and
// label format. It carries no racks.
func Default() *Config {
	return &Config{
		Prefix: DefaultPrefix,
		Labels: LabelConfig{Format: FormatSingle},
	}
}

// Load reads and validates a rack configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rack config: %w", err)
	}

	var config Config
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rack config: %w", err)
	}

	// Reject typos instead of silently falling back to defaults.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in rack config", undecoded[0].String())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rack config: %w", err)
	}

	return &config, nil
}

// Save validates the configuration and writes it as TOML, so a file
// written here always loads back.
func Save(path string, c *Config) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid rack config: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode rack config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write rack config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Labels.Format == "" {
		c.Labels.Format = FormatSingle
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.Labels.Format != FormatSingle && c.Labels.Format != FormatMulti {
		return fmt.Errorf("invalid label format: %s (must be %s or %s)", c.Labels.Format, FormatSingle, FormatMulti)
	}

	if len(c.Racks) == 0 {
		return fmt.Errorf("at least one rack is required")
	}

	seen := make(map[string]bool)
	capacityRacks := 0
	for i := range c.Racks {
		r := &c.Racks[i]
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rack %d: %w", i+1, err)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate rack name %q", r.Name)
		}
		seen[r.Name] = true
		if len(r.Capacity) > 0 {
			capacityRacks++
		}
	}

	if capacityRacks != 0 && capacityRacks != len(c.Racks) {
		return fmt.Errorf("racks mix per-level capacities with cell grids (use one shape)")
	}
	if capacityRacks == 0 && !c.hasBins() {
		return fmt.Errorf("no rack defines bin counts")
	}

	return c.validateDigits()
}

func (c *Config) hasBins() bool {
	for i := range c.Racks {
		if len(c.Racks[i].Bins) > 0 {
			return true
		}
	}
	return false
}

// validateDigits rejects rack sets whose names resolve to the same printed
// rack number, which would collapse distinct slots into one location key.
func (c *Config) validateDigits() error {
	racks, _ := c.Allocation()
	designators := allocate.Designators(racks)

	names := make([]string, len(racks))
	for i, r := range racks {
		names[i] = r.Name
	}
	sort.Slice(names, func(i, j int) bool { return allocate.NaturalLess(names[i], names[j]) })

	byDigits := make(map[[2]string]string)
	for _, name := range names {
		d := designators[name]
		if other, ok := byDigits[d]; ok {
			return fmt.Errorf("racks %q and %q share rack number %s%s", other, name, d[0], d[1])
		}
		byDigits[d] = name
	}

	return nil
}

// Validate checks that the RackConfig is valid.
func (r *RackConfig) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(r.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	levels := make(map[string]bool)
	for _, level := range r.Levels {
		if level == "" {
			return fmt.Errorf("levels cannot be blank")
		}
		if levels[level] {
			return fmt.Errorf("duplicate level %q", level)
		}
		levels[level] = true
	}

	hasCapacity := len(r.Capacity) > 0
	hasGrid := len(r.Cells) > 0 || len(r.Bins) > 0
	if hasCapacity && hasGrid {
		return fmt.Errorf("capacity cannot be combined with cells or bins")
	}
	if !hasCapacity && !hasGrid {
		return fmt.Errorf("either capacity or cells and bins are required")
	}
	if len(r.Bins) > 0 && len(r.Cells) == 0 {
		return fmt.Errorf("bins require cells")
	}

	for typ := range r.Capacity {
		if strings.TrimSpace(typ) == "" {
			return fmt.Errorf("capacity entry has a blank container type")
		}
	}
	for typ := range r.Bins {
		if strings.TrimSpace(typ) == "" {
			return fmt.Errorf("bins entry has a blank container type")
		}
	}
	for level := range r.Cells {
		if !levels[level] {
			return fmt.Errorf("cells set for unknown level %q", level)
		}
	}

	return nil
}

// Allocation converts the configuration into the engine's rack set and run
// options.
func (c *Config) Allocation() ([]allocate.Rack, allocate.Options) {
	racks := make([]allocate.Rack, len(c.Racks))
	for i, r := range c.Racks {
		racks[i] = allocate.Rack{
			Name:     r.Name,
			Levels:   r.Levels,
			Capacity: r.Capacity,
			Cells:    r.Cells,
			Bins:     r.Bins,
		}
	}
	return racks, allocate.Options{Prefix: c.Prefix, GroupByStation: c.GroupByStation}
}

// Mode returns the allocation strategy the rack shapes select.
func (c *Config) Mode() allocate.Mode {
	racks, _ := c.Allocation()
	return allocate.ModeFor(racks)
}
