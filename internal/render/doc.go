// Package render builds the markdown index document from a script catalog.
//
// The document layout is fixed: title, badge summary, intro sentence, a
// category navigation list, one table section per category, and static
// maintenance and contribution prose. Rendering is deterministic so the
// check mode of the CLI can compare documents byte for byte.
//
// # Templates
//
// Markdown templates are embedded using go:embed:
//
//	templates/readme.md.tmpl    // document skeleton
//	templates/category.md.tmpl  // per-category table section
//
// Template execution failures panic: templates are embedded, parsed at init
// time, and fed typed data.
//
// # Usage
//
//	categories, err := scanner.Scan()
//	if err != nil {
//	    return err
//	}
//	content := render.Markdown(categories, app.Links())
//	err = os.WriteFile(readmePath, []byte(content), 0644)
package render
