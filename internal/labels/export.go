package labels

import (
	"encoding/csv"
	"io"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

// csvHeader matches the original located sheets: canonical item fields
// followed by the assigned location columns.
var csvHeader = []string{
	"Part No", "Description", "Bus Model", "Station No", "Container Type",
	"Rack", "Rack No 1st", "Rack No 2nd", "Level", "Cell", "Location Key",
}

// ExportCSV writes every assignment as one row with its location columns.
// Unplaced items, when included, keep their item fields and leave the
// location columns blank.
func ExportCSV(w io.Writer, result *allocate.Result, includeUnplaced bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, a := range result.Assignments {
		row := []string{
			a.Item.PartNo, a.Item.Description, a.Item.BusModel, a.Item.Station, a.Item.ContainerType,
			a.Slot.Prefix, a.Slot.Digit1, a.Slot.Digit2, a.Slot.Level, CellNo(a.Slot.Cell), Key(a.Slot),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	if includeUnplaced {
		for _, it := range result.Unplaced {
			row := []string{
				it.PartNo, it.Description, it.BusModel, it.Station, it.ContainerType,
				"", "", "", "", "", "",
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
