// Package catalog discovers categorized scripts beneath a repository root.
//
// # Layout
//
// Each immediate subdirectory of the root is a category; files directly
// inside a category are its scripts. Nested directories are not descended
// into. Version control and tooling directories, plus any name starting with
// "." or "_", are never treated as categories.
//
// # Scanning
//
// A Scanner builds the catalog in one pass:
//
//	scanner := catalog.NewScanner(root)
//	categories, err := scanner.Scan()
//
// Categories and scripts come back in file name order, so repeated scans of
// an unchanged tree produce an identical catalog. Per-script metadata is
// recovered through the metadata package.
//
// # Links
//
// Links derives the GitHub URLs and the remote execution command for a
// script from the repository slug and branch:
//
//	links := catalog.Links{Repo: "monlor/scripts", Branch: "main"}
//	cmd := links.RemoteCommand(record)
package catalog
