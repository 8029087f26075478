package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/service/manager"
)

// listCmd prints the summary table of all students.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students with their averages and grades.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return manager.RunList(cmd.Context(), commandOptions())
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(listCmd)
}
