package cmd

import (
	"github.com/axees/scout/core"
	"github.com/axees/scout/internal/contract"
	"github.com/spf13/cobra"
)

// tiersCmd displays the formal definitions of the pricing tiers.
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Display the pricing tier thresholds, rates and floors",
	Long: `Show the pricing model behind every cost estimate.

Lists each follower tier with its threshold, per-follower rate and
minimum spend, plus the pricing classes used for budget filtering.

No creator data is loaded - this is purely informational.

Examples:
  # Show the pricing model
  scout tiers

  # Export the pricing table
  scout tiers --output csv --output-file tiers.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTiers(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display tiers", err)
		}
	},
}
