// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monlor/scriptdex/internal/app"
	"github.com/monlor/scriptdex/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T       *testing.T
	Root    string
	Config  *config.Config
	App     *app.App
	cleanup func()
}

// NewTestEnv creates a new test environment with a temporary script repository
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()

	cfg := DefaultConfig()

	// Persist the same settings so commands that reload configuration from
	// the root see identical values.
	toml := "repo = \"" + cfg.Repo + "\"\nbranch = \"" + cfg.Branch + "\"\nreadme = \"" + cfg.Readme + "\"\n"
	if err := os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte(toml), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	testApp := app.New(
		app.WithRoot(root),
		app.WithConfig(cfg),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:      t,
		Root:   root,
		Config: cfg,
		App:    testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// AddCategory creates a category directory in the test repository
func (e *TestEnv) AddCategory(name string) string {
	e.T.Helper()

	path := filepath.Join(e.Root, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create category %s: %v", name, err)
	}
	return path
}

// AddScript writes a script into a category, creating the category if needed
func (e *TestEnv) AddScript(category, name, content string) string {
	e.T.Helper()

	dir := e.AddCategory(category)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		e.T.Fatalf("Failed to write script %s: %v", name, err)
	}
	return path
}

// WriteConfig writes a scriptdex.toml into the test repository root
func (e *TestEnv) WriteConfig(content string) {
	e.T.Helper()

	path := filepath.Join(e.Root, config.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
}

// WriteReadme writes an existing index document into the test repository root
func (e *TestEnv) WriteReadme(content string) {
	e.T.Helper()

	path := e.App.ReadmePath()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write readme: %v", err)
	}
}

// ReadReadme reads the generated index document, failing the test if missing
func (e *TestEnv) ReadReadme() string {
	e.T.Helper()

	data, err := os.ReadFile(e.App.ReadmePath())
	if err != nil {
		e.T.Fatalf("Failed to read readme: %v", err)
	}
	return string(data)
}

// ReadmeExists checks whether the index document has been written
func (e *TestEnv) ReadmeExists() bool {
	_, err := os.Stat(e.App.ReadmePath())
	return err == nil
}

// DefaultConfig returns a basic configuration for testing
func DefaultConfig() *config.Config {
	return &config.Config{
		Repo:   "example/scripts",
		Branch: "main",
		Readme: "README.md",
	}
}
