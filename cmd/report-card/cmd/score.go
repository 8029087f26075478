package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/domain/gradebook"
	"github.com/oshokin/report-card/internal/service/manager"
)

// scoreCmd records one subject score for an existing student.
var scoreCmd = &cobra.Command{
	Use:   "score <name> <subject> <score>",
	Short: "Record or overwrite one subject score for a student.",
	Long: `Records a score for one subject of an existing student.
An existing score for the same subject is overwritten.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := gradebook.ParseScore(args[2])
		if err != nil {
			return err
		}

		return manager.RunSetScore(cmd.Context(), commandOptions(), args[0], args[1], score)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(scoreCmd)
}
