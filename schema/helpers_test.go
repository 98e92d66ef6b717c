package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFollowers(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{900, "900"},
		{0, "0"},
		{1_000, "1.0K"},
		{45_200, "45.2K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_500_000, "2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFollowers(tt.count), "FormatFollowers(%d) should match", tt.count)
		})
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost int
		want string
	}{
		{0, "$0"},
		{250, "$250"},
		{1250, "$1,250"},
		{12500, "$12,500"},
		{1250000, "$1,250,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCost(tt.cost), "FormatCost(%d) should match", tt.cost)
		})
	}
}

func TestTierForFollowers(t *testing.T) {
	tests := []struct {
		followers int
		want      Tier
	}{
		{0, TierNano},
		{9_999, TierNano},
		{10_000, TierMicro},
		{99_999, TierMicro},
		{100_000, TierMacro},
		{999_999, TierMacro},
		{1_000_000, TierMega},
		{50_000_000, TierMega},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForFollowers(tt.followers), "TierForFollowers(%d) should match", tt.followers)
	}
}

func TestCategoryForCost(t *testing.T) {
	tests := []struct {
		cost int
		want TierCategory
	}{
		{0, CategoryBudget},
		{999, CategoryBudget},
		{1_000, CategoryStandard},
		{4_999, CategoryStandard},
		{5_000, CategoryPremium},
		{100_000, CategoryPremium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryForCost(tt.cost), "CategoryForCost(%d) should match", tt.cost)
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{" Instagram ", "TIKTOK", "", "YouTube"})
	assert.Equal(t, []string{"instagram", "tiktok", "youtube"}, got, "NormalizeList should lowercase, trim and drop empties")
}

func TestContainsFold(t *testing.T) {
	list := []string{"English", "Spanish"}
	assert.True(t, ContainsFold(list, "english"), "ContainsFold should match case-insensitively")
	assert.False(t, ContainsFold(list, "French"), "ContainsFold should reject missing entries")
}

func TestAgeRange(t *testing.T) {
	r := AgeRange{Min: 18, Max: 34}

	assert.True(t, r.Overlaps(AgeRange{Min: 30, Max: 45}), "partial overlap should match")
	assert.True(t, r.Overlaps(AgeRange{Min: 34, Max: 50}), "boundary touch should match")
	assert.False(t, r.Overlaps(AgeRange{Min: 35, Max: 50}), "disjoint ranges should not match")

	assert.True(t, r.Contains(18), "lower bound is inclusive")
	assert.True(t, r.Contains(34), "upper bound is inclusive")
	assert.False(t, r.Contains(35), "outside upper bound should not match")
}

func TestNewFilterState(t *testing.T) {
	fs := NewFilterState()

	assert.Equal(t, 0, fs.PriceRange.Min, "default min price should be 0")
	assert.Equal(t, DefaultMaxPrice, fs.PriceRange.Max, "default max price should be the ceiling")
	assert.Equal(t, BucketAll, fs.FollowerBucket, "default bucket should be all")
	assert.Equal(t, LocationCountry, fs.LocationMode, "default location mode should be country")
	assert.True(t, fs.IsUnconstrained(), "fresh state should be unconstrained")
}

func TestFilterStateIsUnconstrained(t *testing.T) {
	fs := NewFilterState()
	fs.Search = "fitness"
	assert.False(t, fs.IsUnconstrained(), "search text should constrain the state")

	fs = NewFilterState()
	fs.TierCategories = []TierCategory{CategoryPremium}
	assert.False(t, fs.IsUnconstrained(), "tier categories should constrain the state")

	fs = NewFilterState()
	fs.GenderRatio = &GenderSplit{Male: 50, Female: 50}
	assert.True(t, fs.IsUnconstrained(), "gender ratio alone never constrains results")
}
