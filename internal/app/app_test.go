package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monlor/scriptdex/internal/config"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}

	// Should have default root and config
	if app.Root != "." {
		t.Errorf("Root = %q, want %q", app.Root, ".")
	}
	if app.Config == nil {
		t.Error("Config should not be nil")
	}
}

func TestNew_WithRoot(t *testing.T) {
	app := New(WithRoot("/custom/scripts"))

	if app.Root != "/custom/scripts" {
		t.Errorf("WithRoot did not set root: got %q", app.Root)
	}
}

func TestNew_WithConfig(t *testing.T) {
	customConfig := &config.Config{
		Repo:   "example/scripts",
		Branch: "dev",
		Readme: "INDEX.md",
	}

	app := New(WithConfig(customConfig))

	if app.Config != customConfig {
		t.Error("WithConfig did not set custom config")
	}
}

func TestNew_MultipleOptions(t *testing.T) {
	customConfig := &config.Config{Repo: "example/scripts", Branch: "main", Readme: "README.md"}

	app := New(
		WithRoot("/custom/scripts"),
		WithConfig(customConfig),
	)

	if app.Root != "/custom/scripts" {
		t.Error("Root not set correctly")
	}
	if app.Config != customConfig {
		t.Error("Config not set correctly")
	}
}

func TestConfigure(t *testing.T) {
	root := t.TempDir()
	content := "repo = \"example/tools\"\nbranch = \"develop\"\n"
	if err := os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(WithRoot(root))
	if err := app.Configure(""); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	if app.Config.Repo != "example/tools" {
		t.Errorf("Repo = %q, want %q", app.Config.Repo, "example/tools")
	}
	if app.Config.Branch != "develop" {
		t.Errorf("Branch = %q, want %q", app.Config.Branch, "develop")
	}
}

func TestConfigure_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	content := "repo = \"not-a-slug\"\n"
	if err := os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(WithRoot(root))
	if err := app.Configure(""); err == nil {
		t.Error("Configure() should fail for invalid repo slug")
	}
}

func TestScanner(t *testing.T) {
	app := New(WithRoot("/repo"), WithConfig(&config.Config{
		Repo:          "example/scripts",
		Branch:        "main",
		Readme:        "README.md",
		IgnoreDirs:    []string{"vendor"},
		ExtraSuffixes: []string{".lua"},
	}))

	scanner := app.Scanner()
	if scanner == nil {
		t.Fatal("Scanner() returned nil")
	}
}

func TestLinks(t *testing.T) {
	app := New(WithConfig(&config.Config{
		Repo:   "example/scripts",
		Branch: "release",
		Readme: "README.md",
	}))

	links := app.Links()
	if links.Repo != "example/scripts" {
		t.Errorf("Links().Repo = %q, want %q", links.Repo, "example/scripts")
	}
	if links.Branch != "release" {
		t.Errorf("Links().Branch = %q, want %q", links.Branch, "release")
	}
}

func TestReadmePath(t *testing.T) {
	app := New(WithRoot("/repo"), WithConfig(&config.Config{
		Repo:   "example/scripts",
		Branch: "main",
		Readme: "INDEX.md",
	}))

	got := app.ReadmePath()
	want := filepath.Join("/repo", "INDEX.md")
	if got != want {
		t.Errorf("ReadmePath() = %q, want %q", got, want)
	}
}

func TestSetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	customApp := New(WithRoot("/custom"))
	SetDefault(customApp)

	if Default != customApp {
		t.Error("SetDefault did not update Default")
	}
}

func TestResetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	// Set a custom default
	customApp := New(WithRoot("/custom"))
	SetDefault(customApp)

	// Reset to default
	ResetDefault()

	// Should have a new default app with default settings
	if Default == customApp {
		t.Error("ResetDefault did not create new Default")
	}
	if Default.Root != "." {
		t.Error("ResetDefault should create app with default root")
	}
}
