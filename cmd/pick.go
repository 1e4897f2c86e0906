package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monlor/scriptdex/internal/catalog"
	"github.com/monlor/scriptdex/internal/logging"
	"github.com/monlor/scriptdex/internal/tui"
)

var pickPlain bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive script picker",
	Long: `Opens an interactive TUI for browsing the script catalog. Scripts are
grouped under their category.

Use arrow keys or j/k to navigate, / to filter, Enter to select.

Actions:
  Enter  - Print the remote execution command for the selected script
  q/Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickPlain, "plain", false, "Print a plain listing instead of the interactive picker")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	categories, err := scanCatalog()
	if err != nil {
		return err
	}

	if catalog.TotalScripts(categories) == 0 {
		logInfo("No scripts found. Add category directories with scripts and rerun scriptdex.")
		return nil
	}

	if pickPlain {
		fmt.Print(tui.SimplePicker(categories, repoLinks()))
		return nil
	}

	result, err := tui.RunPicker(categories)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	if result.Action == tui.ActionSelect {
		fmt.Println(repoLinks().RemoteCommand(result.Script))
	}
	return nil
}
