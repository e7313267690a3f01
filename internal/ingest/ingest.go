package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a spreadsheet flattened to strings: one header row plus data
// rows. Rows may be shorter than the header row; consumers read missing
// cells as empty.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Open reads a part list into a Table, dispatching on the file extension.
func Open(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv, .xlsx or .xlsm)", ext)
	}
}
