// Package schema resolves raw spreadsheet headers to canonical fields.
//
// Part lists arrive with headers like "Part No", "PART NUMBER" or "Bin
// Type" depending on who exported them. Resolution matches each canonical
// field against the headers using ordered keyword rules instead of exact
// names, so the same tool reads all of them.
//
// # Determinism
//
// Fields resolve in rule order, scanning headers left to right; the first
// matching unclaimed column wins and is never re-matched by a later field.
// One header satisfying several rules therefore resolves the same way on
// every run, and `rackline columns` shows the outcome.
//
// # Required fields
//
// part_no and container_type must resolve; allocation is impossible
// without them and Resolve fails with a MissingColumnError. The other
// fields fall back to empty values.
package schema
