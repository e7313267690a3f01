package allocate

// claim records which container type owns a (rack, level) pair and how many
// cells it has filled there. Ownership is level-granular: the first type to
// place an item on a level keeps it, and later cursors skip it.
type claim struct {
	typ    string
	placed int
}

type claimKey struct {
	rack  string
	level string
}

// cursor tracks fill progress for one container type across its eligible
// racks: current rack, current level, and cells filled on that level. The
// only transition is advance; a (rack, level) pair is never revisited, so
// cells on one level stay contiguous.
type cursor struct {
	racks []Rack
	rack  int
	level int
	fill  int
}

// place finds the next open cell for the container type. It skips levels
// owned by other types and advances once the current level reaches its
// capacity. ok is false when every eligible rack is exhausted.
func (c *cursor) place(typ string, claims map[claimKey]*claim) (Rack, string, int, bool) {
	for c.rack < len(c.racks) {
		rack := c.racks[c.rack]
		level := rack.Levels[c.level]
		owner := claims[claimKey{rack.Name, level}]
		if owner != nil && owner.typ != typ {
			c.advance(rack)
			continue
		}
		if c.fill >= capacityFor(rack, typ) {
			c.advance(rack)
			continue
		}
		if owner == nil {
			owner = &claim{typ: typ}
			claims[claimKey{rack.Name, level}] = owner
		}
		cell := c.fill + 1
		c.fill++
		owner.placed = c.fill
		return rack, level, cell, true
	}
	return Rack{}, "", 0, false
}

// advance moves to the next level, rolling over to the next rack when the
// current rack's levels are exhausted. The fill count resets.
func (c *cursor) advance(rack Rack) {
	c.fill = 0
	c.level++
	if c.level >= len(rack.Levels) {
		c.level = 0
		c.rack++
	}
}

// fillByLevel allocates every container type group with a per-type cursor,
// then synthesizes fillers so the full configured grid is represented.
func (p *partition) fillByLevel(groups map[string][]Item, order []string) {
	claims := make(map[claimKey]*claim)

	for _, typ := range order {
		items := groups[typ]
		eligible := eligibleRacks(p.racks, typ)
		if typ == "" || len(eligible) == 0 {
			p.skip(WarnUnconfigured, typ, items)
			continue
		}
		cur := &cursor{racks: eligible}
		for i, it := range items {
			rack, level, cell, ok := cur.place(typ, claims)
			if !ok {
				p.skip(WarnOverflow, typ, items[i:])
				break
			}
			p.assign(it, p.slot(rack, level, cell))
		}
	}

	p.levelFillers(claims)
}

// levelFillers completes every configured level to its owner's capacity
// with EMPTY records. Levels nothing claimed fall to the rack's first
// container type in ascending order, so an untouched rack still renders a
// full grid of empty bins.
func (p *partition) levelFillers(claims map[claimKey]*claim) {
	for _, rack := range p.racks {
		types := containerTypes(rack)
		if len(types) == 0 {
			continue
		}
		for _, level := range rack.Levels {
			typ, placed := types[0], 0
			if owner := claims[claimKey{rack.Name, level}]; owner != nil {
				typ, placed = owner.typ, owner.placed
			}
			for cell := placed + 1; cell <= capacityFor(rack, typ); cell++ {
				p.fill(typ, p.slot(rack, level, cell))
			}
		}
	}
}
