// Package config provides configuration loading for scriptdex.
//
// # Sources
//
// Configuration is assembled from three layers, later layers winning:
//
//   - Built-in defaults (monlor/scripts, branch main, README.md)
//   - scriptdex.toml at the repository root, or the --config override
//   - SCRIPTDEX_* environment variables, optionally via a .env file
//
// # Config File
//
// The TOML file carries the repository identity and catalog tweaks:
//
//	repo = "monlor/scripts"
//	branch = "main"
//	readme = "README.md"
//	ignore_dirs = ["vendor"]
//	extra_suffixes = [".zsh"]
//
// # Environment
//
// Scalar settings can be overridden per invocation:
//
//	SCRIPTDEX_REPO    // owner/name slug
//	SCRIPTDEX_BRANCH  // branch for generated links
//	SCRIPTDEX_README  // generated document file name
//
// # Validation
//
// Load validates the assembled configuration: the repo must be an owner/name
// slug, the readme a bare file name, and extra suffixes dot-prefixed.
package config
