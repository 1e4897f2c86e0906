package testutil

import (
	"embed"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture script by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// AddFixtureScript copies an embedded fixture script into a category of the
// test repository and returns its path.
func (e *TestEnv) AddFixtureScript(category, name string) string {
	e.T.Helper()

	content, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return e.AddScript(category, name, string(content))
}

// BackupScript returns the annotated bash fixture.
func BackupScript() ([]byte, error) {
	return LoadFixture("backup.sh")
}

// DeployScript returns the python docstring fixture.
func DeployScript() ([]byte, error) {
	return LoadFixture("deploy.py")
}

// CleanupScript returns the ruby comment fixture.
func CleanupScript() ([]byte, error) {
	return LoadFixture("cleanup.rb")
}

// PlainScript returns the fixture without any metadata.
func PlainScript() ([]byte, error) {
	return LoadFixture("plain.sh")
}
