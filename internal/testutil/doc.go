// Package testutil provides test fixtures and utilities.
//
// This package contains a test environment builder for command and catalog
// tests plus embedded sample scripts covering the metadata styles the
// extractor understands.
//
// # Test Environment
//
// NewTestEnv creates a temporary script repository and installs a test app as
// the process default:
//
//	func TestSomething(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    defer env.Cleanup()
//
//	    env.AddScript("system", "backup.sh", "#!/bin/bash\n# Backs up /etc\n")
//	    // run commands against env.App ...
//	}
//
// # Fixtures
//
// Sample scripts are embedded using go:embed:
//
//	fixtures/backup.sh   // bash with comment metadata and OS declaration
//	fixtures/deploy.py   // python with a one-line docstring
//	fixtures/cleanup.rb  // ruby with comment metadata
//	fixtures/plain.sh    // no shebang, no metadata
//
// # Loading Fixtures
//
// Helper functions return fixture contents:
//
//	content, err := testutil.BackupScript()
//	content, err := testutil.PlainScript()
//
// For copying a fixture into the test repository:
//
//	env.AddFixtureScript("system", "backup.sh")
package testutil
