package catalog

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Links derives repository URLs for catalogued scripts.
type Links struct {
	Repo   string // owner/name slug, e.g. "monlor/scripts"
	Branch string
}

// RawBase returns the raw content base URL for the repository.
func (l Links) RawBase() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s", l.Repo, l.Branch)
}

// BlobURL returns the GitHub web view URL for a script.
func (l Links) BlobURL(record ScriptRecord) string {
	return fmt.Sprintf("https://github.com/%s/blob/%s/%s", l.Repo, l.Branch, record.Path)
}

// RawURL returns the raw content URL for a script.
func (l Links) RawURL(record ScriptRecord) string {
	return l.RawBase() + "/" + record.Path
}

// RemoteCommand returns the one-liner that fetches a script and pipes it to
// its executor. The fetch half is shell quoted so unusual script paths stay
// copy-pasteable.
func (l Links) RemoteCommand(record ScriptRecord) string {
	fetch := shellquote.Join("curl", "-sSL", l.RawURL(record))
	return fetch + " | " + record.Executor
}

// CloneURL returns the HTTPS clone URL for the repository.
func (l Links) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s.git", l.Repo)
}
