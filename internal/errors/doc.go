// Package errors provides typed errors with exit codes for rackline.
//
// # Error Types
//
// RacklineError is the base error type that wraps an error with an exit code:
//
//	type RacklineError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitSchemaError  = 2  // Column detection failed
//	ExitConfigError  = 3  // Rack configuration error
//	ExitIngestError  = 4  // Spreadsheet read failure
//	ExitRenderError  = 5  // Label output failure
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.SchemaError(err)
//	errors.ConfigError("failed to parse config", err)
//	errors.IngestError("parts.xlsx", err)
//	errors.RenderError("labels.pdf", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
