// Package allocate maps inventory items onto physical rack locations.
//
// The engine is the core of rackline: it consumes normalized items plus a
// rack configuration and produces located assignments, EMPTY fillers for
// unused capacity, and warnings for demand the configuration cannot hold.
// It performs no I/O and keeps no state between runs; identical inputs
// produce identical output.
//
// # Ordering
//
// Output order is deterministic. Stations are processed in ascending order
// (unstationed rows first), container types in ascending order, racks in
// natural name order ("Rack 2" before "Rack 10"), and items in input order
// within their group.
//
// # Strategies
//
// The configuration shape selects one of two strategies:
//
//   - ModeLevelFill: racks carry per-level capacities. Each container type
//     cycles through its eligible racks, filling one level to capacity
//     before moving to the next.
//   - ModeSlotGrid: racks carry cell grids and total bin counts. The
//     physical slot list is zipped positionally against the configured bin
//     instances and items drop into their type's slots.
//
// # Warnings
//
// Overflow (demand beyond capacity) and unconfigured container types never
// abort a run: affected items are returned in Result.Unplaced alongside an
// ordered warning list. Only the caller decides whether to surface or drop
// them.
package allocate
