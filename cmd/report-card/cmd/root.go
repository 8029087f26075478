package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/config"
	"github.com/oshokin/report-card/internal/service/manager"
	"github.com/oshokin/report-card/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// dataFile path where the gradebook JSON is persisted.
	dataFile string
	// logLevel overrides the configured console log level.
	logLevel string

	// rootCmd represents the base command for managing student report cards.
	rootCmd = &cobra.Command{
		Use:   "report-card",
		Short: "Manage student report cards from the console.",
		Long: `Records student names and per-subject scores, computes averages and
letter grades, and persists everything to a JSON gradebook file.

The gradebook path is resolved from the --data-file flag, the
REPORT_CARD_DATA_FILE environment variable, or the configuration file,
in that order. Run without a subcommand to see the available operations;
use "report-card shell" for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the report-card CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// commandOptions assembles service options from the persistent flags.
func commandOptions() *manager.Options {
	return &manager.Options{
		ConfigPath: configPath,
		DataFile:   dataFile,
		LogLevel:   logLevel,
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup persistent flags shared by every subcommand.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&dataFile, "data-file", "f", "", "path to the gradebook JSON file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "console log level (debug, info, warn, error)")
}
