// Root command wiring for the fetters CLI. Every invocation resolves the
// config and data directories, opens the SQLite store, runs migrations,
// and seeds the status catalog before dispatching to a subcommand.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/config"
	"github.com/fettersdev/fetters/internal/paths"
	"github.com/fettersdev/fetters/internal/sqlite"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// Shared state initialized by PersistentPreRunE.
var (
	cfg   *config.Config
	store *sqlite.DB
)

var rootCmd = &cobra.Command{
	Use:   "fetters",
	Short: "fetters is a local job application tracker",
	Long: `fetters tracks job applications on your own machine: group
applications into sprints, record per-application interview stages,
export a sprint to a spreadsheet, and view aggregate insights.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: per-user data dir)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(updateCmd)
}

// openStore loads the config file and opens the database. The banner
// command works without either.
func openStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "banner" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err = config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir)
	if err != nil {
		return err
	}
	store, err = sqlite.Open(filepath.Join(dataDir, paths.DatabaseFileName))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	if err := store.Statuses().Seed(); err != nil {
		return fmt.Errorf("seed statuses: %w", err)
	}
	return nil
}

func closeStore(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Close()
	}
	return nil
}
