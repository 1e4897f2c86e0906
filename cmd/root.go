package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monlor/scriptdex/internal/app"
	"github.com/monlor/scriptdex/internal/errors"
	"github.com/monlor/scriptdex/internal/logging"
	"github.com/monlor/scriptdex/internal/render"
)

var (
	verbose    bool
	jsonOutput bool
	rootDir    string
	configFile string
	checkMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "scriptdex",
	Short: "Script catalog README generator",
	Long: `scriptdex scans a repository of categorized automation scripts and
generates a markdown index document for it.

Each top-level directory is a category. Script descriptions and supported
operating systems are pulled from the leading comments or docstring of each
file, and the shebang line selects the interpreter for the remote execution
command.

Run without arguments to regenerate the README. Use --check to verify it is
current without writing anything.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		if rootDir != "" {
			app.Default.Root = rootDir
		}
		if err := app.Default.Configure(configFile); err != nil {
			return errors.ConfigError("invalid configuration", err)
		}
		return nil
	},
	RunE: runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Repository root to scan (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (defaults to scriptdex.toml at the root)")
	rootCmd.Flags().BoolVar(&checkMode, "check", false, "Check whether the README is up to date without writing")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	_          = logging.UserWarning // reserved for future use
)

func runGenerate(cmd *cobra.Command, args []string) error {
	a := app.Default

	categories, err := a.Scanner().Scan()
	if err != nil {
		return err
	}

	content := render.Markdown(categories, a.Links())
	readmePath := a.ReadmePath()

	if checkMode {
		// A missing or unreadable document compares as empty.
		current := ""
		if data, err := os.ReadFile(readmePath); err == nil {
			current = string(data)
		}

		if current == content {
			fmt.Println("README is up to date.")
		} else {
			fmt.Println("README needs regeneration. Run without --check to update it.")
		}
		return nil
	}

	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return errors.WriteFailed(readmePath, err)
	}

	logging.Debug("document written",
		"path", readmePath,
		"categories", len(categories),
		"bytes", len(content),
	)
	fmt.Println("README generated.")
	return nil
}
