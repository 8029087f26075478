package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/service/manager"
)

// reportCmd prints one student's report card.
var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Print a student's report card with average and letter grade.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return manager.RunReport(cmd.Context(), commandOptions(), args[0])
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(reportCmd)
}
