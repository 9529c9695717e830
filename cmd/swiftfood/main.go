// swiftfood runs the SwiftFood game backend.
//
// Usage:
//
//	swiftfood serve     - Start the HTTP API
//	swiftfood levels    - Print the level catalog
//	swiftfood events ID - Print a player's recent journal events
//
// Configuration comes from the environment (HTTP_ADDR, STRICT_STATUS, CATALOG_PATH,
// JOURNAL_DRIVER, LOG_LEVEL, ...); flags override it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/swiftfood/internal/config"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:           "swiftfood",
	Short:         "SwiftFood game backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Level catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
