package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/report-card/internal/domain/gradebook"
	"github.com/oshokin/report-card/internal/service/manager"
)

// addCmd registers a new student, optionally with initial scores.
var addCmd = &cobra.Command{
	Use:   "add <name> [subject=score ...]",
	Short: "Add a student, optionally with initial subject scores.",
	Long: `Adds a student to the gradebook. The name must not already exist.

Initial scores can be supplied as subject=score pairs, for example:

  report-card add Alice Math=92 Science=85`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := parseScorePairs(args[1:])
		if err != nil {
			return err
		}

		return manager.RunAdd(cmd.Context(), commandOptions(), args[0], scores)
	},
}

// parseScorePairs converts subject=score arguments into a score map.
func parseScorePairs(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	scores := make(map[string]float64, len(pairs))

	for _, pair := range pairs {
		subject, raw, ok := strings.Cut(pair, "=")
		if !ok || subject == "" {
			return nil, fmt.Errorf("expected subject=score, got %q", pair)
		}

		score, err := gradebook.ParseScore(raw)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, err)
		}

		scores[subject] = score
	}

	return scores, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(addCmd)
}
