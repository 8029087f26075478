package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/service/manager"
)

// shellCmd starts the interactive menu loop.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive report card manager.",
	Long: `Starts a menu-driven session for adding students, recording scores,
viewing report cards and deleting records. The gradebook is saved after
every change and again on exit, including on Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Save-on-interrupt relies on the context being canceled.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return manager.RunShell(ctx, commandOptions())
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(shellCmd)
}
