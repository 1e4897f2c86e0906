package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/monlor/scriptdex/internal/app"
	"github.com/monlor/scriptdex/internal/config"
	"github.com/monlor/scriptdex/internal/errors"
	"github.com/monlor/scriptdex/internal/tui"
)

var (
	initForce   bool
	initNoInput bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a scriptdex.toml for the repository",
	Long: `Walks through the generator settings in an interactive wizard and writes
scriptdex.toml at the repository root. An existing file is never overwritten
unless --force is given.

The repository slug is pre-filled from the root directory name; accept it or
type your own. Use --no-input to write the suggested settings directly.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing scriptdex.toml")
	initCmd.Flags().BoolVar(&initNoInput, "no-input", false, "Write the suggested settings without prompting")
	rootCmd.AddCommand(initCmd)
}

// initSeed builds the wizard's starting values from the loaded configuration,
// swapping the built-in repo slug for one derived from the root directory.
func initSeed() config.Config {
	a := app.Default

	seed := *a.Config
	if seed.Repo == "" || seed.Repo == config.DefaultRepo {
		seed.Repo = tui.SuggestRepoSlug(a.Root)
	}
	return seed
}

func runInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(app.Default.Root, config.ConfigFileName)

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return errors.ValidationError(config.ConfigFileName + " already exists (use --force to overwrite)")
		}
	}

	seed := initSeed()

	cfg := &seed
	if !initNoInput {
		result, err := tui.RunSetup(seed)
		if err != nil {
			return fmt.Errorf("setup error: %w", err)
		}
		if result == nil {
			logInfo("Setup cancelled.")
			return nil
		}
		cfg = result
	}

	if err := cfg.WriteFile(path); err != nil {
		return errors.WriteFailed(path, err)
	}

	logSuccess("Wrote %s", path)
	return nil
}
