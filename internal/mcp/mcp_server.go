// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/axees/scout/internal/contract"
)

// NewMCPServer initializes and configures the Scout MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.CreatorSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Scout Discovery Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	// --- 1. Tool: discover_creators ---
	s.AddTool(mcp.NewTool("discover_creators",
		mcp.WithDescription("Search and filter the creator roster by price, platform, size, location and audience."),
		mcp.WithString("search", mcp.Description("Substring match on creator name, location, categories, handle, country or city.")),
		mcp.WithNumber("min_price", mcp.Description("Minimum estimated campaign cost in dollars.")),
		mcp.WithNumber("max_price", mcp.Description("Maximum estimated campaign cost in dollars.")),
		mcp.WithString("tiers", mcp.Description("Comma-separated pricing classes (budget, standard, premium).")),
		mcp.WithString("platforms", mcp.Description("Comma-separated platform names (instagram, tiktok, youtube, ...).")),
		mcp.WithString("follower_size", mcp.Description("Coarse follower bucket. Defaults to 'all'."), mcp.Enum("all", "nano", "micro", "macro", "mega")),
		mcp.WithString("location_mode", mcp.Description("Location matching mode (country, local, event)."), mcp.Enum("country", "local", "event")),
		mcp.WithString("countries", mcp.Description("Comma-separated countries, used in country mode.")),
		mcp.WithString("cities", mcp.Description("Comma-separated cities, used in local mode.")),
		mcp.WithString("languages", mcp.Description("Comma-separated languages.")),
		mcp.WithString("categories", mcp.Description("Comma-separated content categories.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleDiscoverCreators)

	// --- 2. Tool: estimate_campaign_cost ---
	s.AddTool(mcp.NewTool("estimate_campaign_cost",
		mcp.WithDescription("Estimate a campaign cost for a creator given follower count and engagement rate."),
		mcp.WithNumber("followers", mcp.Description("Total follower count across platforms."), mcp.Required()),
		mcp.WithNumber("engagement", mcp.Description("Average engagement rate in percent.")),
	), h.handleEstimateCampaignCost)

	// --- 3. Tool: get_pricing_tiers ---
	s.AddTool(mcp.NewTool("get_pricing_tiers",
		mcp.WithDescription("Return the pricing tier ladder: follower thresholds, per-follower rates and cost floors."),
	), h.handleGetPricingTiers)

	return s
}

// StartMCPServer starts the Scout MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.CreatorSource) error {
	s := NewMCPServer(baseCfg, src)
	return server.ServeStdio(s)
}
