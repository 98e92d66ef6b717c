// Package schema has configs, models and constants for all parts of scout.
package schema

// PlatformStat is the per-platform slice of a raw creator record.
type PlatformStat struct {
	Platform   string  `json:"platform"`   // Platform name as produced upstream (any casing)
	Followers  int     `json:"followers"`  // Follower count on this platform
	Engagement float64 `json:"engagement"` // Engagement rate on this platform, in percent
}

// RawCreator is a creator record as produced by the upstream data source.
// Nested and optional fields are the norm; Normalize is the single place
// where defaults are applied.
type RawCreator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Avatar   string `json:"avatar,omitempty"`

	Platforms        []PlatformStat `json:"platforms,omitempty"`
	Categories       []string       `json:"categories,omitempty"`
	PostingFrequency string         `json:"postingFrequency,omitempty"`
	Country          string         `json:"country,omitempty"`
	City             string         `json:"city,omitempty"`
	AudienceGender   *GenderSplit   `json:"audienceGender,omitempty"`
	AudienceAge      *AgeRange      `json:"audienceAge,omitempty"`
	Language         string         `json:"language,omitempty"`
	Age              int            `json:"age,omitempty"`
	AudienceGroups   []string       `json:"audienceGroups,omitempty"`
}

// NormalizedCreator is the flat, filter-ready shape derived from a RawCreator.
// Every field is fully populated; derived fields (TotalFollowers, AvgEngagement,
// Tier, EstimatedCost, TierCategory) are pure functions of the raw record and
// are never mutated after Normalize returns.
type NormalizedCreator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`

	TotalFollowers int      `json:"total_followers"`
	AvgEngagement  float64  `json:"avg_engagement"` // Mean across platforms, rounded to 1 decimal
	Platforms      []string `json:"platforms"`      // Lowercase platform names
	Categories     []string `json:"categories"`

	Tier          Tier         `json:"tier"`           // Follower-derived size class
	EstimatedCost int          `json:"estimated_cost"` // Estimated campaign cost in whole dollars
	TierCategory  TierCategory `json:"tier_category"`  // Cost-derived pricing class

	PostingFrequency string      `json:"posting_frequency"`
	Country          string      `json:"country"`
	City             string      `json:"city"`
	AudienceGender   GenderSplit `json:"audience_gender"`
	AudienceAge      AgeRange    `json:"audience_age"`
	Language         string      `json:"language"`
	Age              int         `json:"age"`
	AudienceGroups   []string    `json:"audience_groups"`

	// CostBreakdown holds the pricing components (rate, base, multiplier, floor)
	// for explain mode.
	CostBreakdown map[BreakdownKey]float64 `json:"cost_breakdown,omitempty"`
}

// GenderSplit is an audience gender distribution in percent.
type GenderSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Overlaps reports whether two inclusive ranges share at least one year.
func (r AgeRange) Overlaps(other AgeRange) bool {
	return r.Max >= other.Min && r.Min <= other.Max
}

// Contains reports whether age falls inside the inclusive range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// PriceRange is an inclusive estimated-cost interval in whole dollars.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DiscoveryResult bundles the filtered creators with the derived summary,
// ready for the output layer.
type DiscoveryResult struct {
	Creators []NormalizedCreator `json:"creators"`
	Summary  Summary             `json:"summary"`
}

// EstimateResult is a single standalone cost estimate.
type EstimateResult struct {
	Followers     int                      `json:"followers"`
	Engagement    float64                  `json:"engagement"`
	Tier          Tier                     `json:"tier"`
	EstimatedCost int                      `json:"estimated_cost"`
	TierCategory  TierCategory             `json:"tier_category"`
	Breakdown     map[BreakdownKey]float64 `json:"breakdown"`
}

// Summary holds the derived display aggregates for a discovery pass.
type Summary struct {
	ResultCount    int                  `json:"result_count"`
	SelectedCount  int                  `json:"selected_count"`
	SelectedInView int                  `json:"selected_in_view"`
	TotalReach     int                  `json:"total_reach"`
	AvgEngagement  float64              `json:"avg_engagement"`
	AvgCost        int                  `json:"avg_cost"`
	MinCost        int                  `json:"min_cost"`
	MaxCost        int                  `json:"max_cost"`
	TierCounts     map[TierCategory]int `json:"tier_counts"`
}
