package catalog

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/monlor/scriptdex/internal/errors"
	"github.com/monlor/scriptdex/internal/logging"
	"github.com/monlor/scriptdex/internal/metadata"
)

// ignoredDirs are never treated as categories.
var ignoredDirs = map[string]bool{
	".git":        true,
	"tools":       true,
	".github":     true,
	"__pycache__": true,
}

// recognizedSuffixes are the script extensions included in the catalog.
// Files without an extension are always included. Matching is case
// sensitive, so "deploy.SH" is not a script.
var recognizedSuffixes = map[string]bool{
	".sh":   true,
	".bash": true,
	".py":   true,
	".rb":   true,
	".js":   true,
	".ts":   true,
	".ps1":  true,
}

// ScriptRecord describes one catalogued script.
type ScriptRecord struct {
	Name        string
	Path        string // repository-relative, slash separated
	Description string
	Executor    string
	SupportedOS []string
}

// Category groups the scripts of one top-level directory.
type Category struct {
	Name    string
	Scripts []ScriptRecord
}

// Anchor returns the markdown heading anchor for the category.
func (c Category) Anchor() string {
	return strings.ReplaceAll(strings.ToLower(c.Name), " ", "-")
}

// Scanner walks a repository root and builds the script catalog.
type Scanner struct {
	root          string
	extraIgnores  map[string]bool
	extraSuffixes map[string]bool
}

// ScannerOption customizes a Scanner.
type ScannerOption func(*Scanner)

// WithIgnoredDirs supplements the built-in ignored directory set.
func WithIgnoredDirs(names ...string) ScannerOption {
	return func(s *Scanner) {
		for _, name := range names {
			s.extraIgnores[name] = true
		}
	}
}

// WithSuffixes supplements the recognized script extensions. Extensions must
// include their leading dot.
func WithSuffixes(exts ...string) ScannerOption {
	return func(s *Scanner) {
		for _, ext := range exts {
			s.extraSuffixes[ext] = true
		}
	}
}

// NewScanner returns a Scanner rooted at the given directory.
func NewScanner(root string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		root:          root,
		extraIgnores:  make(map[string]bool),
		extraSuffixes: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan builds the catalog. Categories and their scripts are returned in file
// name order; a category with no scripts is still returned.
func (s *Scanner) Scan() ([]Category, error) {
	logging.Debug("scanning repository", "root", s.root)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.ScanFailed(s.root, err)
	}

	var categories []Category
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if s.skipDir(name) {
			continue
		}
		scripts, err := s.scanCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, Category{Name: name, Scripts: scripts})
	}

	logging.Debug("scan complete",
		"categories", len(categories),
		"scripts", TotalScripts(categories),
	)
	return categories, nil
}

func (s *Scanner) skipDir(name string) bool {
	if ignoredDirs[name] || s.extraIgnores[name] {
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func (s *Scanner) scanCategory(name string) ([]ScriptRecord, error) {
	dir := filepath.Join(s.root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ScanFailed(dir, err)
	}

	var scripts []ScriptRecord
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := scriptSuffix(entry.Name())
		if ext != "" && !recognizedSuffixes[ext] && !s.extraSuffixes[ext] {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.ScanFailed(filepath.Join(dir, entry.Name()), err)
		}
		description, supportedOS := metadata.Extract(content)
		scripts = append(scripts, ScriptRecord{
			Name:        entry.Name(),
			Path:        path.Join(name, entry.Name()),
			Description: description,
			Executor:    metadata.DetectExecutor(content, ext),
			SupportedOS: supportedOS,
		})
	}
	return scripts, nil
}

// scriptSuffix returns the file extension of name. Dotfiles such as ".env"
// and names with a bare trailing dot have no extension.
func scriptSuffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// TotalScripts counts the scripts across all categories.
func TotalScripts(categories []Category) int {
	total := 0
	for _, category := range categories {
		total += len(category.Scripts)
	}
	return total
}

// FindScript looks up a record by its repository-relative path.
func FindScript(categories []Category, ref string) (ScriptRecord, bool) {
	for _, category := range categories {
		for _, script := range category.Scripts {
			if script.Path == ref {
				return script, true
			}
		}
	}
	return ScriptRecord{}, false
}
