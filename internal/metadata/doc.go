// Package metadata recovers script metadata from file contents.
//
// Scripts carry their documentation in leading comments: a description on the
// first meaningful comment or docstring line, and optional operating system
// declarations such as "# Supports: Linux, OpenWrt". This package parses that
// header region without executing or fully interpreting the script.
//
// # Extraction
//
// Extract scans the leading lines of a script and returns its description and
// supported OS labels:
//
//	description, supportedOS := metadata.Extract(content)
//
// Scanning stops at the first line that is neither blank, a shebang, a
// comment, nor part of a docstring. Scripts without a usable header fall back
// to DefaultDescription and Linux.
//
// # Executor Detection
//
// DetectExecutor derives the command used to run a script remotely:
//
//	executor := metadata.DetectExecutor(content, ".sh")
//
// The shebang line wins when present (with /usr/bin/env indirection resolved),
// otherwise the file extension decides, defaulting to "sh".
//
// # OS Labels
//
// NormalizeOSLabel canonicalizes user-written OS names, so "osx", "mac" and
// "darwin" all render as "macOS". Unknown labels pass through unchanged.
package metadata
