package cmd

import (
	"github.com/lumenkit/kbscore/core"
	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd produces the full readiness report for a snapshot.
var scoreCmd = &cobra.Command{
	Use:   "score <snapshot-path>",
	Short: "Score a knowledge base snapshot and print the readiness report.",
	Long: `Evaluate every scoreable field in a knowledge base snapshot and produce
a normalized readiness score from 0 to 100.

The report includes:
- Total score with a health status label
- Per-category breakdown with earned and possible points
- Per-field sub-scores (existence, completeness, quality)
- Ranked recommendations ordered by estimated score impact

Pass '-' as the snapshot path to read the snapshot from stdin.

Examples:
  # Score a snapshot with the generic catalog
  kbscore score snapshot.json

  # Apply dental clinic catalog overrides
  kbscore score snapshot.json --vertical dental_clinic

  # Persist the run for trend tracking
  kbscore score snapshot.json --store-backend sqlite --persist

  # Export the report as JSON
  kbscore score snapshot.json --output json --output-file report.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, resultStore); err != nil {
			contract.LogFatal("Cannot score snapshot", err)
		}
	},
}
