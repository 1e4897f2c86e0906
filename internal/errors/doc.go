// Package errors provides typed errors with exit codes for scriptdex.
//
// # Error Types
//
// CatalogError is the base error type that wraps an error with an exit code:
//
//	type CatalogError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitConfigError    = 2  // Configuration error
//	ExitScanError      = 3  // Repository scan failed
//	ExitRenderError    = 4  // Document rendering failed
//	ExitScriptNotFound = 5  // Script missing from the catalog
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ScanFailed("network", err)
//	errors.ScriptNotFound("network/ddns.sh")
//	errors.ConfigError("failed to parse config", err)
//	errors.WriteFailed("README.md", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
