package cmd

import (
	"github.com/axees/scout/core"
	"github.com/axees/scout/internal/contract"
	"github.com/spf13/cobra"
)

// discoverCmd performs creator discovery against a file or the catalog.
var discoverCmd = &cobra.Command{
	Use:   "discover [creators-file]",
	Short: "Find and rank creators matching campaign filters.",
	Long: `Load creators, estimate campaign pricing and rank the matches.

Creators come from a JSON file when one is given, otherwise from the
imported catalog. Every creator is normalized and priced before the
filters run, so results are consistent regardless of source.

Filters combine with AND semantics and results keep their source order,
so a tighter query always returns a subset of a looser one.

Examples:
  # Everything under $5,000 from a file
  scout discover creators.json --max-price 5000

  # Premium Instagram creators from the catalog
  scout discover --tiers premium --platforms instagram

  # Micro creators in Canada posting weekly
  scout discover --follower-size micro --countries Canada --posting-frequency Weekly

  # Local campaign in two cities with audience targeting
  scout discover --location-mode local --cities "Austin,Dallas" --audience-age 18-34

  # Include per-creator detail and the pricing breakdown
  scout discover creators.json --detail --explain

  # Export matches to CSV for the campaign brief
  scout discover creators.json --output csv --output-file roster.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src, err := buildSource()
		if err != nil {
			contract.LogFatal("Cannot run discovery", err)
		}
		if err := core.ExecuteDiscover(rootCtx, cfg, src); err != nil {
			contract.LogFatal("Cannot run discovery", err)
		}
	},
}
