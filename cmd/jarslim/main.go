// Package main provides the command-line interface for the jarslim tool.
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/edward-ap/jarslim/pkg/config"
	"github.com/edward-ap/jarslim/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	configPath string
)

var errMissingCommand = errors.New("expected a command: find or minimize")

// resolveConfig loads the configuration. An explicitly supplied path must
// load cleanly; only the default location falls back to built-in defaults.
func resolveConfig(explicitPath string) (*config.Config, error) {
	if explicitPath != "" {
		return config.NewManager().LoadConfig(explicitPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return config.LoadConfigWithFallback(filepath.Join(homeDir, ".jarslim", "config.yaml"))
}

// loadConfig resolves the configuration from the --config flag or the
// JARSLIM_CONFIG environment variable, failing hard when an explicit path
// cannot be loaded.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = os.Getenv("JARSLIM_CONFIG")
	}

	cfg, err := resolveConfig(path)
	if err != nil {
		log.Fatalf("Cannot load configuration from %s: %v", path, err)
	}

	return cfg
}

// progressLogger returns the logger commands report progress through.
func progressLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

func main() {
	godotenv.Load(".env")

	var rootCmd = &cobra.Command{
		Use:   "jarslim",
		Short: "jarslim - ship only the library classes you actually use",
		Long: `jarslim finds which classes of a target library your compiled code ` +
			`references and builds a minimized copy of the library archive containing ` +
			`only those classes and their intra-library dependencies.

Typical session:
  jarslim find --cls ./build/classes > deps.txt
  jarslim minimize lib/guava.jar deps.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errMissingCommand
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createFindCmd(), createMinimizeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
