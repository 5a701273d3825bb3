package cmd

import (
	"github.com/lumenkit/kbscore/core"
	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/spf13/cobra"
)

// fieldsCmd prints the scoreable field catalog.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the scoreable field catalog for a vertical.",
	Long: `Print every scoreable field with its category, weight, priority, and
content requirements, after applying vertical overrides.

Use this to understand what the scorer looks for before preparing a
knowledge base, or to see how a vertical changes the requirements.

Examples:
  # Show the generic catalog
  kbscore fields

  # Show the restaurant catalog (menu items, more branches weight)
  kbscore fields --vertical restaurant

  # Export the catalog as CSV
  kbscore fields --output csv --output-file catalog.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFields(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list fields", err)
		}
	},
}
