package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX loads the first worksheet of an Excel workbook. Cell values
// arrive already formatted as strings, matching the CSV reader's shape.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
