// Package logging provides logging utilities for rackline.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("resolved schema", "part_no", partCol, "container", contCol)
//	logging.Warn("capacity exhausted", "type", binType, "station", station)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Reading %s...", inputPath)
//	logging.UserSuccess("Wrote %d labels to %s", count, outPath)
//	logging.UserWarning("%d items of %q could not be placed", count, binType)
//	logging.UserError("Failed to render labels: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
