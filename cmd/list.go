package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monlor/scriptdex/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalogued scripts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	categories, err := scanCatalog()
	if err != nil {
		return err
	}

	if catalog.TotalScripts(categories) == 0 {
		logInfo("No scripts found. Add category directories with scripts and rerun scriptdex.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSCRIPT\tEXECUTOR\tOS\tDESCRIPTION")
	fmt.Fprintln(w, "--------\t------\t--------\t--\t-----------")

	for _, category := range categories {
		for _, script := range category.Scripts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				category.Name,
				script.Name,
				script.Executor,
				strings.Join(script.SupportedOS, ", "),
				script.Description,
			)
		}
	}

	return w.Flush()
}
