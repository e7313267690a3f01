package allocate

import (
	"fmt"
	"sort"
)

// Mode selects the allocation strategy. It follows the shape of the rack
// configuration rather than a separate switch.
type Mode int

const (
	// ModeLevelFill fills one level to its per-level capacity before
	// advancing to the next level, then the next rack.
	ModeLevelFill Mode = iota
	// ModeSlotGrid zips the physical slot grid against the configured
	// bin counts and assigns items into the resulting per-type slots.
	ModeSlotGrid
)

func (m Mode) String() string {
	if m == ModeSlotGrid {
		return "slot-grid"
	}
	return "level-fill"
}

// ModeFor returns the strategy implied by the rack configuration shape.
// Racks carrying per-level capacities select ModeLevelFill; racks carrying
// cell grids and bin counts select ModeSlotGrid. Mixed shapes are rejected
// at configuration load, before a run.
func ModeFor(racks []Rack) Mode {
	for _, r := range racks {
		if len(r.Capacity) > 0 {
			return ModeLevelFill
		}
	}
	return ModeSlotGrid
}

// Run assigns every item a physical slot, synthesizes EMPTY fillers for
// unused capacity, and reports demand that could not be placed. Identical
// items, racks, and options always produce identical output.
func Run(items []Item, racks []Rack, opts Options) (*Result, error) {
	usable := usableRacks(racks)
	if len(usable) == 0 {
		return nil, fmt.Errorf("no usable racks configured")
	}

	mode := ModeFor(usable)
	designators := Designators(usable)
	res := &Result{}

	for _, station := range stationOrder(items, opts.GroupByStation) {
		part := &partition{
			station: station,
			racks:   usable,
			digits:  designators,
			prefix:  opts.Prefix,
			result:  res,
		}
		grouped, order := groupByType(stationItems(items, station, opts.GroupByStation))
		switch mode {
		case ModeSlotGrid:
			part.fillByGrid(grouped, order)
		default:
			part.fillByLevel(grouped, order)
		}
	}

	return res, nil
}

// partition allocates one station independently. Claims and cursors never
// cross partitions, so identical slots may recur across stations but never
// within one.
type partition struct {
	station string
	racks   []Rack
	digits  map[string][2]string
	prefix  string
	result  *Result
}

func (p *partition) slot(rack Rack, level string, cell int) Slot {
	d := p.digits[rack.Name]
	return Slot{
		Station: p.station,
		Prefix:  p.prefix,
		Digit1:  d[0],
		Digit2:  d[1],
		Level:   level,
		Cell:    cell,
	}
}

func (p *partition) assign(it Item, s Slot) {
	p.result.Assignments = append(p.result.Assignments, Assignment{Item: it, Slot: s})
}

func (p *partition) fill(typ string, s Slot) {
	p.result.Assignments = append(p.result.Assignments, Assignment{
		Item:   Item{PartNo: FillerPartNo, Station: p.station, ContainerType: typ},
		Slot:   s,
		Filler: true,
	})
}

// skip records a warning for items that cannot be placed and moves them to
// the unplaced list.
func (p *partition) skip(kind WarningKind, typ string, items []Item) {
	if len(items) == 0 {
		return
	}
	p.result.Warnings = append(p.result.Warnings, Warning{
		Kind:          kind,
		Station:       p.station,
		ContainerType: typ,
		Count:         len(items),
	})
	p.result.Unplaced = append(p.result.Unplaced, items...)
}

// usableRacks drops racks without levels and orders the rest by natural
// name comparison. The input slice is not modified.
func usableRacks(racks []Rack) []Rack {
	out := make([]Rack, 0, len(racks))
	for _, r := range racks {
		if len(r.Levels) > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return NaturalLess(out[i].Name, out[j].Name)
	})
	return out
}

// stationOrder lists the partitions to allocate. Without station grouping
// there is a single anonymous partition; with it, stations run in
// ascending order, unstationed rows first.
func stationOrder(items []Item, grouped bool) []string {
	if !grouped {
		return []string{""}
	}
	seen := make(map[string]bool)
	var stations []string
	for _, it := range items {
		if !seen[it.Station] {
			seen[it.Station] = true
			stations = append(stations, it.Station)
		}
	}
	sort.Strings(stations)
	return stations
}

func stationItems(items []Item, station string, grouped bool) []Item {
	if !grouped {
		return items
	}
	var out []Item
	for _, it := range items {
		if it.Station == station {
			out = append(out, it)
		}
	}
	return out
}

// groupByType splits items by container type, preserving input order
// inside each group. Group order is ascending by type string.
func groupByType(items []Item) (map[string][]Item, []string) {
	groups := make(map[string][]Item)
	for _, it := range items {
		groups[it.ContainerType] = append(groups[it.ContainerType], it)
	}
	order := make([]string, 0, len(groups))
	for typ := range groups {
		order = append(order, typ)
	}
	sort.Strings(order)
	return groups, order
}
