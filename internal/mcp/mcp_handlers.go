package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/axees/scout/core"
	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.CreatorSource
}

func (h *toolHandler) handleDiscoverCreators(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	// Trimmed the same way the CLI path trims it.
	cfg.Search = strings.TrimSpace(request.GetString("search", cfg.Search))
	if v := request.GetInt("min_price", -1); v >= 0 {
		cfg.PriceRange.Min = v
	}
	if v := request.GetInt("max_price", -1); v >= 0 {
		cfg.PriceRange.Max = v
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	// String filters reuse the flag parsers so behavior matches the CLI.
	input := &contract.ConfigRawInput{
		Tiers:        request.GetString("tiers", ""),
		Platforms:    request.GetString("platforms", ""),
		FollowerSize: request.GetString("follower_size", ""),
		LocationMode: request.GetString("location_mode", ""),
		Countries:    request.GetString("countries", ""),
		Cities:       request.GetString("cities", ""),
		Languages:    request.GetString("languages", ""),
		Categories:   request.GetString("categories", ""),
	}
	override := &contract.Config{PriceRange: cfg.PriceRange}
	if err := contract.ApplyFilterInputs(override, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter parameters: %v", err)), nil
	}
	mergeFilterOverrides(cfg, override)

	result, err := core.DiscoverCreators(ctx, cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEstimateCampaignCost(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	followers := request.GetInt("followers", -1)
	if followers < 0 {
		return mcp.NewToolResultError("followers must be a non-negative number"), nil
	}
	engagement := request.GetFloat("engagement", 0)
	if engagement < 0 {
		return mcp.NewToolResultError("engagement must be a non-negative percentage"), nil
	}

	cost, breakdown := core.EstimateCostBreakdown(followers, engagement)
	est := schema.EstimateResult{
		Followers:     followers,
		Engagement:    engagement,
		Tier:          schema.TierForFollowers(followers),
		EstimatedCost: cost,
		TierCategory:  schema.CategoryForCost(cost),
		Breakdown:     breakdown,
	}

	jsonData, _ := json.MarshalIndent(est, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPricingTiers(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type tierInfo struct {
		Tier         schema.Tier `json:"tier"`
		MinFollowers int         `json:"min_followers"`
		Rate         float64     `json:"rate_per_follower"`
		FloorCost    int         `json:"floor_cost"`
	}
	tiers := []tierInfo{
		{Tier: schema.TierNano, MinFollowers: 0, Rate: schema.RateNano, FloorCost: schema.FloorNano},
		{Tier: schema.TierMicro, MinFollowers: schema.ThresholdMicro, Rate: schema.RateMicro, FloorCost: schema.FloorDefault},
		{Tier: schema.TierMacro, MinFollowers: schema.ThresholdMacro, Rate: schema.RateMacro, FloorCost: schema.FloorDefault},
		{Tier: schema.TierMega, MinFollowers: schema.ThresholdMega, Rate: schema.RateMega, FloorCost: schema.FloorDefault},
	}

	jsonData, _ := json.MarshalIndent(tiers, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// mergeFilterOverrides copies any filter set in override onto cfg.
func mergeFilterOverrides(cfg, override *contract.Config) {
	if len(override.TierCategories) > 0 {
		cfg.TierCategories = override.TierCategories
	}
	if len(override.Platforms) > 0 {
		cfg.Platforms = override.Platforms
	}
	if override.FollowerBucket != "" {
		cfg.FollowerBucket = override.FollowerBucket
	}
	if override.LocationMode != "" {
		cfg.LocationMode = override.LocationMode
	}
	if len(override.Countries) > 0 {
		cfg.Countries = override.Countries
	}
	if len(override.Cities) > 0 {
		cfg.Cities = override.Cities
	}
	if len(override.Languages) > 0 {
		cfg.Languages = override.Languages
	}
	if len(override.Categories) > 0 {
		cfg.Categories = override.Categories
	}
}
