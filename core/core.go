package core

import (
	"context"
	"time"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/internal/outwriter"
	"github.com/axees/scout/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// DiscoverCreators runs the full discovery pipeline over a creator source:
// load, normalize, filter, limit and summarize. It is shared by the CLI
// executor and the MCP handlers.
func DiscoverCreators(ctx context.Context, cfg *contract.Config, src contract.CreatorSource) (schema.DiscoveryResult, error) {
	raws, err := src.Load(ctx)
	if err != nil {
		return schema.DiscoveryResult{}, err
	}

	creators := NormalizeAll(ctx, cfg, raws)
	filtered := Filter(creators, cfg.FilterState())
	if len(filtered) > cfg.ResultLimit {
		filtered = filtered[:cfg.ResultLimit]
	}

	sel := NewSelectionFromIDs(cfg.SelectedIDs)
	return schema.DiscoveryResult{
		Creators: filtered,
		Summary:  Summarize(filtered, sel),
	}, nil
}

// ExecuteDiscover runs the discovery pipeline and prints results.
// It serves as the main entry point for the 'discover' command.
func ExecuteDiscover(ctx context.Context, cfg *contract.Config, src contract.CreatorSource) error {
	start := time.Now()
	result, err := DiscoverCreators(ctx, cfg, src)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintCreatorResults(result, cfg, duration)
}

// ExecuteEstimate computes a single campaign cost estimate and prints it.
// It serves as the main entry point for the 'estimate' command.
func ExecuteEstimate(_ context.Context, cfg *contract.Config) error {
	cost, breakdown := EstimateCostBreakdown(cfg.EstimateFollowers, cfg.EstimateEngagement)
	est := schema.EstimateResult{
		Followers:     cfg.EstimateFollowers,
		Engagement:    cfg.EstimateEngagement,
		Tier:          schema.TierForFollowers(cfg.EstimateFollowers),
		EstimatedCost: cost,
		TierCategory:  schema.CategoryForCost(cost),
		Breakdown:     breakdown,
	}
	return outwriter.PrintEstimateResult(est, cfg)
}

// ExecuteTiers displays the pricing tier definitions.
// This is a static display that does not require any creator data.
func ExecuteTiers(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintTierDefinitions(cfg)
}
