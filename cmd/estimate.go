package cmd

import (
	"github.com/axees/scout/core"
	"github.com/axees/scout/internal/contract"
	"github.com/spf13/cobra"
)

// estimateCmd prices a single hypothetical campaign.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the campaign cost for a follower and engagement profile.",
	Long: `Compute a campaign cost estimate without any creator data.

Applies the same pricing model used during discovery: a per-follower
rate picked by audience size, scaled by engagement and clamped to a
minimum spend. Useful for sanity-checking budgets before a search.

Examples:
  # Price a 250k-follower creator with 4.5% engagement
  scout estimate --followers 250000 --engagement 4.5

  # Show how the estimate was computed
  scout estimate --followers 250000 --engagement 4.5 --explain

  # Machine-readable output for scripts
  scout estimate --followers 80000 --engagement 2.1 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEstimate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run estimate", err)
		}
	},
}
