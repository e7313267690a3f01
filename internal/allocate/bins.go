package allocate

import (
	"sort"
	"strings"
)

// BinCount is a container type detected in the input together with the
// number of items that carry it.
type BinCount struct {
	Type  string
	Count int
}

// DetectBins returns the distinct container types whose name contains
// "bin" in any case, sorted ascending, with per-type item counts. Blank
// and non-bin container types are left out; callers that care about them
// count the remainder themselves.
func DetectBins(items []Item) []BinCount {
	counts := make(map[string]int)
	for _, it := range items {
		typ := strings.TrimSpace(it.ContainerType)
		if typ == "" {
			continue
		}
		if !strings.Contains(strings.ToUpper(typ), "BIN") {
			continue
		}
		counts[typ]++
	}

	out := make([]BinCount, 0, len(counts))
	for typ, n := range counts {
		out = append(out, BinCount{Type: typ, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
