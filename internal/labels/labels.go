package labels

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

// Record is one printable label entry, flattened from an assignment.
type Record struct {
	PartNo      string
	Description string
	BusModel    string
	Station     string
	Prefix      string
	Digit1      string
	Digit2      string
	Level       string
	Cell        string
}

// NewRecord flattens an assignment into printable fields. The cell number
// is zero-padded here; everything downstream treats it as text.
func NewRecord(a allocate.Assignment) Record {
	return Record{
		PartNo:      a.Item.PartNo,
		Description: a.Item.Description,
		BusModel:    a.Item.BusModel,
		Station:     a.Item.Station,
		Prefix:      a.Slot.Prefix,
		Digit1:      a.Slot.Digit1,
		Digit2:      a.Slot.Digit2,
		Level:       a.Slot.Level,
		Cell:        CellNo(a.Slot.Cell),
	}
}

// locationValues lists the location strip cells in print order.
func (r Record) locationValues() [7]string {
	return [7]string{r.BusModel, r.Station, r.Prefix, r.Digit1, r.Digit2, r.Level, r.Cell}
}

// CellNo renders a 1-based cell number zero-padded to two digits.
func CellNo(cell int) string {
	return fmt.Sprintf("%02d", cell)
}

// Key renders a slot as its location key. The station element is present
// only when the slot was allocated under station grouping.
func Key(s allocate.Slot) string {
	parts := make([]string, 0, 6)
	if s.Station != "" {
		parts = append(parts, s.Station)
	}
	parts = append(parts, s.Prefix, s.Digit1, s.Digit2, s.Level, CellNo(s.Cell))
	return strings.Join(parts, "_")
}
