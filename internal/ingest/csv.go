package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readCSV loads a comma-separated part list. The first record is the
// header row; ragged rows are tolerated. A UTF-8 byte order mark on the
// first header is stripped, since Excel CSV exports carry one.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	return &Table{Headers: headers, Rows: records[1:]}, nil
}
