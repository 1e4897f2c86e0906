// Package logging provides logging utilities for scriptdex.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("scanning repository", "root", root)
//	logging.Warn("config file missing", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("README needs regeneration. Run without --check to update it.")
//	logging.UserSuccess("README generated.")
//	logging.UserWarning("Category %s has no scripts", name)
//	logging.UserError("Failed to scan repository: %v", err)
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
