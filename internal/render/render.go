// Package render builds the markdown index document from a script catalog.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/monlor/scriptdex/internal/catalog"
)

//go:embed templates/*.md.tmpl
var templatesFS embed.FS

var readmeTemplates *template.Template

func init() {
	funcs := template.FuncMap{
		"joinStrings": strings.Join,
	}
	readmeTemplates = template.Must(
		template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.md.tmpl"),
	)
}

// renderTemplate executes a named template with the given data and returns the result.
func renderTemplate(name string, data any) string {
	var buf bytes.Buffer
	if err := readmeTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		// Programming error — templates are embedded and tested at init time.
		panic("render: failed to render template " + name + ": " + err.Error())
	}
	return buf.String()
}

// readmeData is the top-level document template payload.
type readmeData struct {
	Repo       string
	Badges     string
	Navigation string
	Sections   string
	CloneURL   string
	RawBase    string
}

// categoryData is the per-category section template payload.
type categoryData struct {
	Name    string
	Scripts []rowData
}

// rowData is one table row. Description arrives already pipe escaped.
type rowData struct {
	Name        string
	URL         string
	Description string
	SupportedOS []string
	Command     string
}

// Markdown renders the complete index document for the given catalog.
// Output is deterministic: the same catalog and links always produce
// byte-identical markdown.
func Markdown(categories []catalog.Category, links catalog.Links) string {
	data := readmeData{
		Repo:       links.Repo,
		Badges:     renderBadges(categories),
		Navigation: renderNavigation(categories),
		Sections:   renderSections(categories, links),
		CloneURL:   links.CloneURL(),
		RawBase:    links.RawBase(),
	}
	return strings.TrimSpace(renderTemplate("readme.md.tmpl", data)) + "\n"
}

// renderBadges builds the single-line badge summary.
func renderBadges(categories []catalog.Category) string {
	totalScripts := catalog.TotalScripts(categories)

	license := "[![License: MIT](https://img.shields.io/badge/license-MIT-green.svg)](LICENSE)"
	scripts := fmt.Sprintf(
		"![Scripts %d](https://img.shields.io/badge/scripts-%d-blue.svg)",
		totalScripts, totalScripts,
	)
	count := fmt.Sprintf(
		"![Categories %d](https://img.shields.io/badge/categories-%d-lightgrey.svg)",
		len(categories), len(categories),
	)

	return strings.Join([]string{license, scripts, count}, " ")
}

// renderNavigation builds the category navigation list.
func renderNavigation(categories []catalog.Category) string {
	if len(categories) == 0 {
		return "- No categories detected yet. Add subdirectories and regenerate the README."
	}

	items := make([]string, 0, len(categories))
	for _, category := range categories {
		items = append(items, fmt.Sprintf(
			"- [%s (%d)](#%s)",
			category.Name, len(category.Scripts), category.Anchor(),
		))
	}
	return strings.Join(items, "\n")
}

// renderSections builds every category section. Each section ends with a
// newline so the joined result keeps one blank line between sections.
func renderSections(categories []catalog.Category, links catalog.Links) string {
	if len(categories) == 0 {
		return "## Category Index\n> No script categories detected yet. Create subdirectories and rerun the generator to populate this section.\n"
	}

	sections := make([]string, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, renderTemplate("category.md.tmpl", newCategoryData(category, links)))
	}
	return strings.Join(sections, "\n")
}

func newCategoryData(category catalog.Category, links catalog.Links) categoryData {
	data := categoryData{Name: category.Name}
	for _, script := range category.Scripts {
		data.Scripts = append(data.Scripts, rowData{
			Name:        script.Name,
			URL:         links.BlobURL(script),
			Description: strings.ReplaceAll(script.Description, "|", `\|`),
			SupportedOS: script.SupportedOS,
			Command:     links.RemoteCommand(script),
		})
	}
	return data
}
