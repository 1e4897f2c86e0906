// Package app provides the application context for scriptdex.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Root   string         // Repository root being catalogued
//	    Config *config.Config // Generator configuration
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	app := app.New(app.WithRoot("."))
//	if err := app.Configure(""); err != nil {
//	    return err
//	}
//
//	// Testing with custom dependencies
//	app := app.New(
//	    app.WithRoot(tmpDir),
//	    app.WithConfig(testConfig),
//	)
//
// # Available Options
//
//	WithRoot(root)      // Custom repository root
//	WithConfig(config)  // Custom configuration
package app
