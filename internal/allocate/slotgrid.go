package allocate

import "sort"

// typedSlot pairs one physical slot with the container type whose bin
// occupies it, per the positional zip of grid against bin counts.
type typedSlot struct {
	typ  string
	slot Slot
}

// grid builds the ordered physical slot list (racks, then levels, then
// cells) zipped positionally against the configured bin instances (racks,
// then container types ascending, each expanded by its count). Physical
// cells beyond the total bin count carry no type and produce no record;
// bin instances beyond the physical grid are dropped and surface later as
// overflow.
func (p *partition) grid() []typedSlot {
	var slots []Slot
	for _, rack := range p.racks {
		for _, level := range rack.Levels {
			for cell := 1; cell <= rack.Cells[level]; cell++ {
				slots = append(slots, p.slot(rack, level, cell))
			}
		}
	}

	var bins []string
	for _, rack := range p.racks {
		types := make([]string, 0, len(rack.Bins))
		for typ := range rack.Bins {
			if typ != "" && rack.Bins[typ] > 0 {
				types = append(types, typ)
			}
		}
		sort.Strings(types)
		for _, typ := range types {
			for i := 0; i < rack.Bins[typ]; i++ {
				bins = append(bins, typ)
			}
		}
	}

	n := len(slots)
	if len(bins) < n {
		n = len(bins)
	}
	zipped := make([]typedSlot, n)
	for i := 0; i < n; i++ {
		zipped[i] = typedSlot{typ: bins[i], slot: slots[i]}
	}
	return zipped
}

// fillByGrid assigns each container type group to its zipped slot list in
// input order. Leftover typed slots become EMPTY fillers in grid order;
// leftover items overflow.
func (p *partition) fillByGrid(groups map[string][]Item, order []string) {
	zipped := p.grid()

	slotsByType := make(map[string][]Slot)
	for _, ts := range zipped {
		slotsByType[ts.typ] = append(slotsByType[ts.typ], ts.slot)
	}

	assigned := make(map[string]int)
	for _, typ := range order {
		items := groups[typ]
		if typ == "" || !p.binConfigured(typ) {
			p.skip(WarnUnconfigured, typ, items)
			continue
		}
		slots := slotsByType[typ]
		n := len(items)
		if len(slots) < n {
			n = len(slots)
		}
		for i := 0; i < n; i++ {
			p.assign(items[i], slots[i])
		}
		assigned[typ] = n
		p.skip(WarnOverflow, typ, items[n:])
	}

	// Walk the grid in physical order; any typed slot past its type's
	// assigned count is an empty bin.
	seen := make(map[string]int)
	for _, ts := range zipped {
		idx := seen[ts.typ]
		seen[ts.typ]++
		if idx >= assigned[ts.typ] {
			p.fill(ts.typ, ts.slot)
		}
	}
}

// binConfigured reports whether any rack carries a positive bin count for
// the container type.
func (p *partition) binConfigured(typ string) bool {
	for _, rack := range p.racks {
		if rack.Bins[typ] > 0 {
			return true
		}
	}
	return false
}
