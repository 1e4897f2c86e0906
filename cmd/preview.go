package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/monlor/scriptdex/internal/errors"
	"github.com/monlor/scriptdex/internal/render"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the generated document in the terminal",
	Long: `Renders the freshly generated index document to the terminal with
markdown styling. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "Word wrap width (0 disables wrapping)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	categories, err := scanCatalog()
	if err != nil {
		return err
	}

	content := render.Markdown(categories, repoLinks())

	rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if previewWidth > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(previewWidth))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return errors.RenderFailed(err)
	}

	styled, err := renderer.Render(content)
	if err != nil {
		return errors.RenderFailed(err)
	}

	fmt.Print(styled)
	return nil
}
