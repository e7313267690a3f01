package labels

import "github.com/firefly-engineering/rackline/internal/allocate"

// Format selects the printed label variant.
type Format string

const (
	// FormatSingle prints one part per label with large type.
	FormatSingle Format = "single"
	// FormatMulti prints two consecutive parts per compact label.
	FormatMulti Format = "multi"
)

// LabelsPerPage is the fixed page capacity.
const LabelsPerPage = 4

// Label is one printed label holding one or two records.
type Label struct {
	Records []Record
}

// Page holds up to LabelsPerPage labels.
type Page struct {
	Labels []Label
}

// Compose flattens assignments into labels and paginates them. Multi
// format pairs consecutive records whether or not they share a location;
// a trailing odd record prints alone.
func Compose(assignments []allocate.Assignment, format Format) []Page {
	per := 1
	if format == FormatMulti {
		per = 2
	}

	var all []Label
	for i := 0; i < len(assignments); i += per {
		end := i + per
		if end > len(assignments) {
			end = len(assignments)
		}
		records := make([]Record, 0, end-i)
		for _, a := range assignments[i:end] {
			records = append(records, NewRecord(a))
		}
		all = append(all, Label{Records: records})
	}

	var pages []Page
	for i := 0; i < len(all); i += LabelsPerPage {
		end := i + LabelsPerPage
		if end > len(all) {
			end = len(all)
		}
		pages = append(pages, Page{Labels: all[i:end]})
	}
	return pages
}

// ByStation splits assignments by slot station for per-station output.
// Group order follows first appearance, which the engine emits sorted.
func ByStation(assignments []allocate.Assignment) ([]string, map[string][]allocate.Assignment) {
	groups := make(map[string][]allocate.Assignment)
	var order []string
	for _, a := range assignments {
		if _, ok := groups[a.Slot.Station]; !ok {
			order = append(order, a.Slot.Station)
		}
		groups[a.Slot.Station] = append(groups[a.Slot.Station], a)
	}
	return order, groups
}
