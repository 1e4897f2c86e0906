package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <category>/<script>",
	Short: "Show details for one script",
	Long: `Shows the catalogued metadata for a single script: description,
executor, supported operating systems, repository URLs, and the remote
execution command.

The script is referenced by its repository-relative path, for example:

  scriptdex show network/ddns.sh`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	categories, err := scanCatalog()
	if err != nil {
		return err
	}

	script, err := findScript(categories, args[0])
	if err != nil {
		return err
	}

	links := repoLinks()

	fmt.Printf("Script:       %s\n", script.Name)
	fmt.Printf("Category:     %s\n", path.Dir(script.Path))
	fmt.Printf("Description:  %s\n", script.Description)
	fmt.Printf("Executor:     %s\n", script.Executor)
	fmt.Printf("Supported OS: %s\n", strings.Join(script.SupportedOS, ", "))
	fmt.Printf("Web URL:      %s\n", links.BlobURL(script))
	fmt.Printf("Raw URL:      %s\n", links.RawURL(script))
	fmt.Printf("Run:          %s\n", links.RemoteCommand(script))

	return nil
}
