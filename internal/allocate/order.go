package allocate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NaturalLess orders rack names numerically where runs of digits appear,
// so "Rack 2" sorts before "Rack 10". Names that only differ in zero
// padding fall back to plain string comparison.
func NaturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		da, db := isDigit(ca), isDigit(cb)
		switch {
		case da && db:
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
		case da != db:
			return ca < cb
		default:
			if ca != cb {
				return ca < cb
			}
			i++
			j++
		}
	}
	if i < len(a) || j < len(b) {
		return len(a)-i < len(b)-j
	}
	return a < b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// trailingNumber extracts the run of digits at the end of a rack name.
func trailingNumber(name string) (int, bool) {
	i := len(name)
	for i > 0 && isDigit(name[i-1]) {
		i--
	}
	if i == len(name) {
		return 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Digits returns the two-character designator for a rack. Names ending in
// digits keep them ("Rack 07" -> "0", "7"); any other name falls back to
// the rack's 1-based ordinal. Values above 99 keep their last two digits.
func Digits(name string, ordinal int) (string, string) {
	n, ok := trailingNumber(name)
	if !ok {
		n = ordinal
	}
	s := fmt.Sprintf("%02d", n%100)
	return s[:1], s[1:]
}

// Designators derives the digit pair for every rack. Racks are ordered by
// natural name comparison before ordinals are assigned, so the result does
// not depend on configuration file order. Colliding names can produce
// duplicate pairs; configuration validation rejects those before a run.
func Designators(racks []Rack) map[string][2]string {
	sorted := make([]Rack, len(racks))
	copy(sorted, racks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return NaturalLess(sorted[i].Name, sorted[j].Name)
	})

	table := make(map[string][2]string, len(sorted))
	for i, r := range sorted {
		d1, d2 := Digits(r.Name, i+1)
		table[r.Name] = [2]string{d1, d2}
	}
	return table
}

// capacityFor returns the per-level capacity of a container type on a rack,
// treating negative values as zero.
func capacityFor(r Rack, typ string) int {
	c := r.Capacity[typ]
	if c < 0 {
		return 0
	}
	return c
}

// eligibleRacks filters racks that can hold the container type, preserving
// natural order.
func eligibleRacks(racks []Rack, typ string) []Rack {
	var out []Rack
	for _, r := range racks {
		if capacityFor(r, typ) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// containerTypes lists the container types a rack is configured for, in
// ascending order.
func containerTypes(r Rack) []string {
	out := make([]string, 0, len(r.Capacity))
	for typ := range r.Capacity {
		if capacityFor(r, typ) > 0 {
			out = append(out, typ)
		}
	}
	sort.Strings(out)
	return out
}
