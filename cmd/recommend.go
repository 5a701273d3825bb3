package cmd

import (
	"github.com/lumenkit/kbscore/core"
	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/spf13/cobra"
)

// recommendCmd prints only the ranked recommendations.
var recommendCmd = &cobra.Command{
	Use:   "recommend <snapshot-path>",
	Short: "Show the highest-impact improvements for a snapshot.",
	Long: `Score a knowledge base snapshot and print only the ranked improvement
recommendations, ordered by estimated impact on the total score.

Each recommendation names the field to fix, why it needs attention, and
how many points fixing it is worth.

Examples:
  # Top 25 recommendations (the default limit)
  kbscore recommend snapshot.json

  # Just the top 5 improvements
  kbscore recommend snapshot.json --limit 5

  # Machine-readable output for a review bot
  kbscore recommend snapshot.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecommend(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build recommendations", err)
		}
	},
}
