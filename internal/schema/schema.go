package schema

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/rackline/internal/allocate"
)

// Field names a canonical spreadsheet column.
type Field string

const (
	FieldPartNo        Field = "part_no"
	FieldDescription   Field = "description"
	FieldBusModel      Field = "bus_model"
	FieldStation       Field = "station"
	FieldContainerType Field = "container_type"
)

// Rule maps headers to one canonical field. A header (upper-cased) matches
// when every keyword group contributes at least one contained keyword, so
// {"PART"} + {"NO", "NUM", "#"} matches "Part No", "PART NUMBER" and
// "Part #" but not "Part Description".
type Rule struct {
	Field    Field
	Keywords [][]string
	Required bool
}

// matches reports whether an upper-cased header satisfies every keyword
// group of the rule.
func (r Rule) matches(header string) bool {
	if len(r.Keywords) == 0 {
		return false
	}
	for _, group := range r.Keywords {
		found := false
		for _, kw := range group {
			if strings.Contains(header, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// DefaultRules cover the headers that appear on line-side part lists.
func DefaultRules() []Rule {
	return []Rule{
		{Field: FieldPartNo, Keywords: [][]string{{"PART"}, {"NO", "NUM", "#"}}, Required: true},
		{Field: FieldDescription, Keywords: [][]string{{"DESC"}}},
		{Field: FieldBusModel, Keywords: [][]string{{"MODEL"}}},
		{Field: FieldStation, Keywords: [][]string{{"STATION"}}},
		{Field: FieldContainerType, Keywords: [][]string{{"CONTAINER", "BIN"}}, Required: true},
	}
}

// MissingColumnError reports required fields no header resolved. It is
// fatal: allocation cannot run without part numbers and container types.
type MissingColumnError struct {
	Fields []Field
}

func (e *MissingColumnError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(names, ", "))
}

// Resolution is the outcome of matching headers against rules: at most one
// column per field, each column claimed by at most one field.
type Resolution struct {
	headers []string
	columns map[Field]int
}

// Resolve matches headers against the rules in declared order. Each field
// claims the first unclaimed header that matches its rule; claimed columns
// are never re-matched by later fields.
func Resolve(headers []string, rules []Rule) (*Resolution, error) {
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}

	res := &Resolution{
		headers: append([]string(nil), headers...),
		columns: make(map[Field]int, len(rules)),
	}
	claimed := make(map[int]bool)

	for _, rule := range rules {
		for col, h := range upper {
			if claimed[col] || !rule.matches(h) {
				continue
			}
			res.columns[rule.Field] = col
			claimed[col] = true
			break
		}
	}

	var missing []Field
	for _, rule := range rules {
		if _, ok := res.columns[rule.Field]; rule.Required && !ok {
			missing = append(missing, rule.Field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Fields: missing}
	}
	return res, nil
}

// Column returns the 0-based column index resolved for a field.
func (r *Resolution) Column(f Field) (int, bool) {
	col, ok := r.columns[f]
	return col, ok
}

// Header returns the original header text resolved for a field.
func (r *Resolution) Header(f Field) (string, bool) {
	col, ok := r.columns[f]
	if !ok {
		return "", false
	}
	return r.headers[col], true
}

// value reads a cell, tolerating rows shorter than the header row. Values
// are trimmed: stray cell whitespace must not split container type groups.
func (r *Resolution) value(row []string, f Field) string {
	col, ok := r.columns[f]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Item builds one allocation item from a row.
func (r *Resolution) Item(row []string) allocate.Item {
	return allocate.Item{
		PartNo:        r.value(row, FieldPartNo),
		Description:   r.value(row, FieldDescription),
		BusModel:      r.value(row, FieldBusModel),
		Station:       r.value(row, FieldStation),
		ContainerType: r.value(row, FieldContainerType),
	}
}

// Items converts every data row. Rows with neither a part number nor a
// container type are skipped; spreadsheets routinely carry blank trailing
// lines.
func (r *Resolution) Items(rows [][]string) []allocate.Item {
	items := make([]allocate.Item, 0, len(rows))
	for _, row := range rows {
		it := r.Item(row)
		if it.PartNo == "" && it.ContainerType == "" {
			continue
		}
		items = append(items, it)
	}
	return items
}
