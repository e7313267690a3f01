package allocate

import (
	"fmt"
	"strings"
)

// FillerPartNo marks synthesized placeholder records for unused capacity.
const FillerPartNo = "EMPTY"

// Item is one inventory row to be stored. Items are built from spreadsheet
// rows and carried into their Assignment unchanged.
type Item struct {
	PartNo        string
	Description   string
	BusModel      string
	Station       string
	ContainerType string
}

// Rack is the static configuration for one physical rack. Exactly one of
// the two capacity shapes is populated:
//
//   - Capacity maps container type to bins per level (ModeLevelFill).
//   - Cells maps level to its physical cell count and Bins maps container
//     type to the total bin count across the rack (ModeSlotGrid).
//
// A rack with no levels is unusable and ignored. Zero or negative capacity
// values mean "not eligible", never an error.
type Rack struct {
	Name     string
	Levels   []string
	Capacity map[string]int
	Cells    map[string]int
	Bins     map[string]int
}

// Slot identifies one physical location. Station is set only when station
// grouping is active. Cell is 1-based and bounded by the level's capacity.
// Within one station no two emitted assignments share the same Slot.
type Slot struct {
	Station string
	Prefix  string
	Digit1  string
	Digit2  string
	Level   string
	Cell    int
}

// Assignment binds an Item to a Slot. Filler assignments represent unused
// physical capacity; they carry part number "EMPTY", the container type
// the slot belongs to, and blank descriptive fields.
type Assignment struct {
	Item   Item
	Slot   Slot
	Filler bool
}

// WarningKind classifies a non-fatal allocation condition.
type WarningKind string

const (
	// WarnOverflow reports items beyond the configured capacity of their
	// container type.
	WarnOverflow WarningKind = "overflow"
	// WarnUnconfigured reports items whose container type matches no rack.
	WarnUnconfigured WarningKind = "unconfigured"
)

// Warning describes items that could not be placed. Warnings never abort a
// run; the affected items are returned in Result.Unplaced.
type Warning struct {
	Kind          WarningKind
	Station       string
	ContainerType string
	Count         int
}

func (w Warning) String() string {
	var b strings.Builder
	switch {
	case w.Kind == WarnUnconfigured && w.ContainerType == "":
		fmt.Fprintf(&b, "%d items have no container type", w.Count)
	case w.Kind == WarnUnconfigured:
		fmt.Fprintf(&b, "%d items of type %q have no configured rack", w.Count, w.ContainerType)
	default:
		fmt.Fprintf(&b, "%d items of type %q exceed configured capacity", w.Count, w.ContainerType)
	}
	if w.Station != "" {
		fmt.Fprintf(&b, " at station %s", w.Station)
	}
	return b.String()
}

// Options control a single allocation run.
type Options struct {
	// Prefix is the painted rack designator printed on every label,
	// e.g. "TR".
	Prefix string
	// GroupByStation partitions items by station and allocates each
	// station independently against the full rack set.
	GroupByStation bool
}

// Result is the complete output of one allocation run.
type Result struct {
	// Assignments holds every located record in deterministic order:
	// within each station partition, located items come first, then that
	// partition's fillers.
	Assignments []Assignment
	// Unplaced holds items skipped by overflow or missing configuration,
	// in input order within their container type group.
	Unplaced []Item
	// Warnings describes every unplaced group, ordered by station and
	// container type.
	Warnings []Warning
}

// Placed counts non-filler assignments.
func (r *Result) Placed() int {
	n := 0
	for _, a := range r.Assignments {
		if !a.Filler {
			n++
		}
	}
	return n
}

// Fillers counts synthesized EMPTY assignments.
func (r *Result) Fillers() int {
	n := 0
	for _, a := range r.Assignments {
		if a.Filler {
			n++
		}
	}
	return n
}
