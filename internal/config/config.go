package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/monlor/scriptdex/internal/logging"
)

const (
	// ConfigFileName is looked up at the repository root.
	ConfigFileName = "scriptdex.toml"

	DefaultRepo   = "monlor/scripts"
	DefaultBranch = "main"
	DefaultReadme = "README.md"
)

// repoSlugRegex validates owner/name repository slugs.
var repoSlugRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Config holds the generator settings for a script repository.
type Config struct {
	Repo          string   `toml:"repo"`           // owner/name slug the links point at
	Branch        string   `toml:"branch"`         // branch the links point at
	Readme        string   `toml:"readme"`         // generated document file name
	IgnoreDirs    []string `toml:"ignore_dirs,omitempty"`    // extra directories excluded from the catalog
	ExtraSuffixes []string `toml:"extra_suffixes,omitempty"` // extra recognized script extensions
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repo:   DefaultRepo,
		Branch: DefaultBranch,
		Readme: DefaultReadme,
	}
}

// Load builds the configuration for a repository root. Settings are applied
// in order: defaults, then scriptdex.toml (or the override path), then
// SCRIPTDEX_* environment variables. A missing default config file is fine;
// a missing override path is an error.
func Load(root, override string) (*Config, error) {
	cfg := Default()

	path := override
	if path == "" {
		path = filepath.Join(root, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			logging.Debug("no config file, using defaults", "path", path)
			path = ""
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		logging.Debug("loaded config file", "path", path)
	}

	// Optional .env at the repository root, never overriding real env vars.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	cfg.Repo = getEnv("SCRIPTDEX_REPO", cfg.Repo)
	cfg.Branch = getEnv("SCRIPTDEX_BRANCH", cfg.Branch)
	cfg.Readme = getEnv("SCRIPTDEX_README", cfg.Readme)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ValidateRepoSlug checks that slug has the owner/name form used in links.
func ValidateRepoSlug(slug string) error {
	if !repoSlugRegex.MatchString(slug) {
		return fmt.Errorf("repo must be an owner/name slug (got %q)", slug)
	}
	return nil
}

// ValidateReadmeName checks that name is a bare file name.
func ValidateReadmeName(name string) error {
	if name == "" {
		return fmt.Errorf("readme is required")
	}
	if filepath.Dir(name) != "." || filepath.IsAbs(name) {
		return fmt.Errorf("readme must be a bare file name (got %q)", name)
	}
	return nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if err := ValidateRepoSlug(c.Repo); err != nil {
		return err
	}

	if c.Branch == "" {
		return fmt.Errorf("branch is required")
	}

	if err := ValidateReadmeName(c.Readme); err != nil {
		return err
	}

	for _, ext := range c.ExtraSuffixes {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("extra suffix must start with a dot (got %q)", ext)
		}
	}

	return nil
}

// ReadmePath returns the full path of the generated document under root.
func (c *Config) ReadmePath(root string) string {
	return filepath.Join(root, c.Readme)
}

// WriteFile validates the Config and writes it as TOML to path.
func (c *Config) WriteFile(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return f.Close()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
