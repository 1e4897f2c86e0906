// Package app provides the application context for scriptdex.
// It allows dependency injection for testing.
package app

import (
	"github.com/monlor/scriptdex/internal/catalog"
	"github.com/monlor/scriptdex/internal/config"
)

// App holds the application dependencies
type App struct {
	// Root is the repository root being catalogued
	Root string

	// Config is the loaded generator configuration
	Config *config.Config
}

// Option is a function that configures the App
type Option func(*App)

// WithRoot sets the repository root
func WithRoot(root string) Option {
	return func(a *App) {
		a.Root = root
	}
}

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// New creates a new App with the given options.
// The configuration starts from the built-in defaults until Configure loads
// the real one for the chosen root.
func New(opts ...Option) *App {
	app := &App{
		Root:   ".",
		Config: config.Default(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Configure loads the configuration for the current root. The override, when
// non-empty, names the config file to use instead of scriptdex.toml.
func (a *App) Configure(override string) error {
	cfg, err := config.Load(a.Root, override)
	if err != nil {
		return err
	}
	a.Config = cfg
	return nil
}

// Scanner returns a catalog scanner for the current root, honoring the
// configured ignore directories and extra suffixes.
func (a *App) Scanner() *catalog.Scanner {
	return catalog.NewScanner(a.Root,
		catalog.WithIgnoredDirs(a.Config.IgnoreDirs...),
		catalog.WithSuffixes(a.Config.ExtraSuffixes...),
	)
}

// Links returns the URL builder for the configured repository.
func (a *App) Links() catalog.Links {
	return catalog.Links{Repo: a.Config.Repo, Branch: a.Config.Branch}
}

// ReadmePath returns the generated document path for the current root.
func (a *App) ReadmePath() string {
	return a.Config.ReadmePath(a.Root)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
