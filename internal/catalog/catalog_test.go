package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monlor/scriptdex/internal/errors"
	"github.com/monlor/scriptdex/internal/metadata"
)

func writeScript(t *testing.T, root, category, name, content string) {
	t.Helper()

	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestScan_BuildsCatalog(t *testing.T) {
	root := t.TempDir()

	writeScript(t, root, "network", "ddns.sh", "#!/bin/bash\n# Updates dynamic DNS records\n# Supports: Linux, OpenWrt\n")
	writeScript(t, root, "system", "deploy.py", "#!/usr/bin/env python3\n\"\"\"Deploys the current release.\"\"\"\n")

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].Name != "network" || categories[1].Name != "system" {
		t.Errorf("category order = [%s %s], want [network system]", categories[0].Name, categories[1].Name)
	}

	ddns := categories[0].Scripts[0]
	if ddns.Name != "ddns.sh" {
		t.Errorf("Name = %q, want %q", ddns.Name, "ddns.sh")
	}
	if ddns.Path != "network/ddns.sh" {
		t.Errorf("Path = %q, want %q", ddns.Path, "network/ddns.sh")
	}
	if ddns.Description != "Updates dynamic DNS records" {
		t.Errorf("Description = %q", ddns.Description)
	}
	if ddns.Executor != "bash" {
		t.Errorf("Executor = %q, want %q", ddns.Executor, "bash")
	}
	if len(ddns.SupportedOS) != 2 || ddns.SupportedOS[0] != "Linux" || ddns.SupportedOS[1] != "OpenWrt" {
		t.Errorf("SupportedOS = %v, want [Linux OpenWrt]", ddns.SupportedOS)
	}

	deploy := categories[1].Scripts[0]
	if deploy.Description != "Deploys the current release." {
		t.Errorf("Description = %q", deploy.Description)
	}
	if deploy.Executor != "python3" {
		t.Errorf("Executor = %q, want %q", deploy.Executor, "python3")
	}
}

func TestScan_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{".git", "tools", ".github", "__pycache__", ".hidden", "_drafts"} {
		writeScript(t, root, dir, "ignored.sh", "#!/bin/sh\n")
	}
	writeScript(t, root, "network", "ddns.sh", "#!/bin/sh\n")

	// A plain file at the root is not a category either.
	if err := os.WriteFile(filepath.Join(root, "LICENSE"), []byte("MIT"), 0644); err != nil {
		t.Fatal(err)
	}

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 1 || categories[0].Name != "network" {
		t.Errorf("categories = %+v, want only network", categories)
	}
}

func TestScan_FiltersBySuffix(t *testing.T) {
	root := t.TempDir()

	included := []string{"a.sh", "b.bash", "c.py", "d.rb", "e.js", "f.ts", "g.ps1", "noext", ".env", "trailing."}
	excluded := []string{"notes.txt", "README.md", "archive.gz", "upper.SH"}

	for _, name := range append(append([]string{}, included...), excluded...) {
		writeScript(t, root, "mixed", name, "#!/bin/sh\n")
	}

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(categories))
	}

	found := make(map[string]bool)
	for _, script := range categories[0].Scripts {
		found[script.Name] = true
	}
	for _, name := range included {
		if !found[name] {
			t.Errorf("script %q should be catalogued", name)
		}
	}
	for _, name := range excluded {
		if found[name] {
			t.Errorf("file %q should be skipped", name)
		}
	}
}

func TestScan_KeepsEmptyCategory(t *testing.T) {
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "placeholder"), 0755); err != nil {
		t.Fatal(err)
	}

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(categories))
	}
	if categories[0].Name != "placeholder" || len(categories[0].Scripts) != 0 {
		t.Errorf("categories = %+v, want empty placeholder", categories)
	}
}

func TestScan_IgnoresNestedDirs(t *testing.T) {
	root := t.TempDir()

	writeScript(t, root, "system", "top.sh", "#!/bin/sh\n")
	writeScript(t, root, filepath.Join("system", "nested"), "deep.sh", "#!/bin/sh\n")

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 1 || len(categories[0].Scripts) != 1 {
		t.Fatalf("categories = %+v, want single script in system", categories)
	}
	if categories[0].Scripts[0].Name != "top.sh" {
		t.Errorf("script = %q, want top.sh", categories[0].Scripts[0].Name)
	}
}

func TestScan_Options(t *testing.T) {
	root := t.TempDir()

	writeScript(t, root, "vendor", "dep.sh", "#!/bin/sh\n")
	writeScript(t, root, "games", "tetris.lua", "-- lua\n")
	writeScript(t, root, "games", "snake.sh", "#!/bin/sh\n")

	categories, err := NewScanner(root,
		WithIgnoredDirs("vendor"),
		WithSuffixes(".lua"),
	).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(categories) != 1 || categories[0].Name != "games" {
		t.Fatalf("categories = %+v, want only games", categories)
	}
	if len(categories[0].Scripts) != 2 {
		t.Errorf("got %d scripts, want tetris.lua and snake.sh", len(categories[0].Scripts))
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope")).Scan()
	if err == nil {
		t.Fatal("Scan() should fail for a missing root")
	}
	if code := errors.GetExitCode(err); code != errors.ExitScanError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitScanError)
	}
}

func TestScan_UndecodableScript(t *testing.T) {
	root := t.TempDir()

	writeScript(t, root, "system", "blob.sh", "\xff\xfe\x00garbage")

	categories, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	script := categories[0].Scripts[0]
	if script.Description != metadata.DecodeFailureDescription {
		t.Errorf("Description = %q, want decode failure text", script.Description)
	}
	if len(script.SupportedOS) != 1 || script.SupportedOS[0] != "Linux" {
		t.Errorf("SupportedOS = %v, want [Linux]", script.SupportedOS)
	}
	if script.Executor != "sh" {
		t.Errorf("Executor = %q, want fallback sh", script.Executor)
	}
}

func TestScriptSuffix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"backup.sh", ".sh"},
		{"deploy.tar.gz", ".gz"},
		{"upper.SH", ".SH"},
		{".env", ""},
		{".hidden.sh", ".sh"},
		{"trailing.", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := scriptSuffix(tt.name); got != tt.want {
			t.Errorf("scriptSuffix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTotalScripts(t *testing.T) {
	categories := []Category{
		{Name: "a", Scripts: make([]ScriptRecord, 3)},
		{Name: "b"},
		{Name: "c", Scripts: make([]ScriptRecord, 2)},
	}

	if got := TotalScripts(categories); got != 5 {
		t.Errorf("TotalScripts() = %d, want 5", got)
	}
}

func TestFindScript(t *testing.T) {
	categories := []Category{
		{Name: "network", Scripts: []ScriptRecord{
			{Name: "ddns.sh", Path: "network/ddns.sh"},
		}},
	}

	script, ok := FindScript(categories, "network/ddns.sh")
	if !ok {
		t.Fatal("FindScript should find network/ddns.sh")
	}
	if script.Name != "ddns.sh" {
		t.Errorf("Name = %q, want ddns.sh", script.Name)
	}

	if _, ok := FindScript(categories, "network/missing.sh"); ok {
		t.Error("FindScript should not find network/missing.sh")
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"network", "network"},
		{"Windows Tools", "windows-tools"},
		{"two  spaces", "two--spaces"},
	}

	for _, tt := range tests {
		category := Category{Name: tt.name}
		if got := category.Anchor(); got != tt.want {
			t.Errorf("Anchor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
