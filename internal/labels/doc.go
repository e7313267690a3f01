// Package labels turns allocation results into printable bin labels.
//
// # Pipeline
//
// Compose flattens assignments into labels (one part per label in single
// format, two consecutive parts in multi) and paginates them four to a
// page. Render typesets pages into an A4 PDF: each part prints as a
// bordered info table (part number with the last five characters
// enlarged, description sized to fit) above a colored location strip.
// ExportCSV writes the same records as a table with the appended location
// columns.
//
// # Location Keys
//
// Key renders a slot as an underscore-joined location key:
//
//	TR_0_1_A_03         (prefix, rack digits, level, zero-padded cell)
//	ST10_TR_0_1_A_03    (station first, under station grouping)
//
// The key format is stable; downstream sorting and label scanning depend
// on it.
package labels
