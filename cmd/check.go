package cmd

import (
	"github.com/lumenkit/kbscore/core"
	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd gates CI/CD pipelines on readiness thresholds.
var checkCmd = &cobra.Command{
	Use:   "check <snapshot-path>",
	Short: "Verify a snapshot meets readiness thresholds for CI/CD gating.",
	Long: `Score a knowledge base snapshot and exit non-zero when the total score
or any category score falls below the configured thresholds.

Designed for pipelines that publish assistant configurations: wire this
command before deployment to block launches with an unready knowledge base.

Examples:
  # Require a total score of at least 70 (the default)
  kbscore check snapshot.json

  # Stricter gate for production launches
  kbscore check snapshot.json --min-score 85 --min-category-score 60

  # Gate a vertical-specific configuration
  kbscore check snapshot.json --vertical beauty_salon --min-score 80`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Readiness check failed", err)
		}
	},
}
