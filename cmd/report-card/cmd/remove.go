package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/service/manager"
)

// removeCmd deletes a student record.
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a student and all recorded scores.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return manager.RunRemove(cmd.Context(), commandOptions(), args[0])
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(removeCmd)
}
