package cmd

import (
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/monlor/scriptdex/internal/app"
	"github.com/monlor/scriptdex/internal/catalog"
	"github.com/monlor/scriptdex/internal/errors"
)

// scanCatalog builds the catalog for the default app's root.
// This is a helper to reduce repetition in commands.
func scanCatalog() ([]catalog.Category, error) {
	return app.Default.Scanner().Scan()
}

// repoLinks returns the URL builder for the configured repository.
func repoLinks() catalog.Links {
	return app.Default.Links()
}

// resolveScriptRef canonicalizes a user-supplied <category>/<script> reference.
// The reference is resolved under the repository root with SecureJoin so
// "../" segments cannot point outside it, then converted back to the
// repository-relative slash form used by catalog records.
func resolveScriptRef(ref string) (string, error) {
	root := app.Default.Root

	resolved, err := securejoin.SecureJoin(root, ref)
	if err != nil {
		return "", errors.ValidationError("invalid script reference: " + ref)
	}

	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return "", errors.ValidationError("invalid script reference: " + ref)
	}
	return filepath.ToSlash(rel), nil
}

// findScript resolves a reference and looks it up in the catalog.
func findScript(categories []catalog.Category, ref string) (catalog.ScriptRecord, error) {
	resolved, err := resolveScriptRef(ref)
	if err != nil {
		return catalog.ScriptRecord{}, err
	}

	script, ok := catalog.FindScript(categories, resolved)
	if !ok {
		return catalog.ScriptRecord{}, errors.ScriptNotFound(ref)
	}
	return script, nil
}
