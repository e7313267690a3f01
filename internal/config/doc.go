// Package config loads and validates the rackline rack configuration.
//
// # File Format
//
// Configuration is a TOML file with global settings and one [[rack]] block
// per physical rack:
//
//	prefix = "TR"
//	group_by_station = false
//
//	[labels]
//	format = "single"
//
//	[[rack]]
//	name = "Rack 01"
//	levels = ["A", "B", "C", "D"]
//	[rack.capacity]
//	"Bin A" = 5
//
// # Rack Shapes
//
// A rack carries exactly one capacity shape. [rack.capacity] maps container
// types to bins per level and selects level-fill allocation. [rack.cells]
// plus [rack.bins] describe a physical cell grid with total bin counts per
// container type and select slot-grid allocation:
//
//	[[rack]]
//	name = "Rack 02"
//	levels = ["A", "B"]
//	[rack.cells]
//	A = 10
//	B = 10
//	[rack.bins]
//	"Bin A" = 12
//
// All racks in one file must use the same shape.
//
// # Validation
//
// Load validates after parsing: every rack needs a unique name and at
// least one level, container type keys cannot be blank, shapes cannot be
// mixed, and no two racks may resolve to the same printed rack number.
// Unknown keys are rejected so typos do not silently fall back to
// defaults.
package config
