// Root command for the shelf CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/booklane/shelf/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagLibrary   string
	flagJSON      bool
)

// configLibraryFile holds the library_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configLibraryFile string

var rootCmd = &cobra.Command{
	Use:     "shelf",
	Short:   "Shelf is a console library catalog manager",
	Version: version,
	Long: `Shelf manages a book catalog persisted as a single JSON file.
Books are added, removed, searched, listed, and checked in or out by id.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configLibraryFile = cfg.GetString(cfgKeyLibraryFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "library file (default: $(CWD)/library.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(compactCmd)
}

// resolveLibraryFile returns the library file path following the precedence:
// --library flag > config.yaml library_file > SHELF_LIBRARY_FILE env > default.
func resolveLibraryFile() (string, error) {
	return paths.ResolveLibraryFile(flagLibrary, configLibraryFile)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > SHELF_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
