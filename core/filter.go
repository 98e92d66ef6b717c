package core

import (
	"strings"

	"github.com/axees/scout/schema"
)

// predicate checks one filter dimension against a normalized creator.
type predicate func(schema.NormalizedCreator, schema.FilterState) bool

// predicates is the fixed evaluation order. Matches short-circuits on the
// first failing entry, so cheap checks come first.
var predicates = []predicate{
	matchSearch,
	matchPrice,
	matchTierCategories,
	matchPlatforms,
	matchFollowerBucket,
	matchPostingFrequency,
	matchLocation,
	matchGenderRatio,
	matchAudienceAge,
	matchInfluencerAge,
	matchLanguages,
	matchAudienceGroups,
	matchCategories,
}

// Matches reports whether a creator passes every active predicate.
func Matches(c schema.NormalizedCreator, fs schema.FilterState) bool {
	for _, p := range predicates {
		if !p(c, fs) {
			return false
		}
	}
	return true
}

// Filter returns the creators that pass the filter state, preserving input
// order. The input slice is never mutated.
func Filter(creators []schema.NormalizedCreator, fs schema.FilterState) []schema.NormalizedCreator {
	out := make([]schema.NormalizedCreator, 0, len(creators))
	for _, c := range creators {
		if Matches(c, fs) {
			out = append(out, c)
		}
	}
	return out
}

// matchSearch does a case-insensitive substring match against the creator's
// name, location, categories, handle, country and city.
func matchSearch(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if fs.Search == "" {
		return true
	}
	needle := strings.ToLower(fs.Search)
	haystacks := []string{c.Name, c.Location, c.Handle, c.Country, c.City}
	haystacks = append(haystacks, c.Categories...)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func matchPrice(c schema.NormalizedCreator, fs schema.FilterState) bool {
	return c.EstimatedCost >= fs.PriceRange.Min && c.EstimatedCost <= fs.PriceRange.Max
}

// matchTierCategories filters on the cost-derived pricing class, not the
// follower-derived tier. The two disagree for creators whose engagement
// pushes cost across a category boundary, and that asymmetry is intended.
func matchTierCategories(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if len(fs.TierCategories) == 0 {
		return true
	}
	for _, tc := range fs.TierCategories {
		if c.TierCategory == tc {
			return true
		}
	}
	return false
}

func matchPlatforms(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if len(fs.Platforms) == 0 {
		return true
	}
	for _, want := range fs.Platforms {
		if schema.ContainsFold(c.Platforms, want) {
			return true
		}
	}
	return false
}

func matchFollowerBucket(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if fs.FollowerBucket == schema.BucketAll || fs.FollowerBucket == "" {
		return true
	}
	return schema.BucketForTier(c.Tier) == fs.FollowerBucket
}

func matchPostingFrequency(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if fs.PostingFrequency == "" {
		return true
	}
	return strings.EqualFold(c.PostingFrequency, fs.PostingFrequency)
}

// matchLocation dispatches on the location mode: country matching for
// country mode, city matching for local mode. Event mode carries no
// location constraint.
func matchLocation(c schema.NormalizedCreator, fs schema.FilterState) bool {
	switch fs.LocationMode {
	case schema.LocationLocal:
		if len(fs.Cities) == 0 {
			return true
		}
		return schema.ContainsFold(fs.Cities, c.City)
	case schema.LocationEvent:
		return true
	default:
		if len(fs.Countries) == 0 {
			return true
		}
		return schema.ContainsFold(fs.Countries, c.Country)
	}
}

// matchGenderRatio always passes. The ratio is collected and displayed but
// has never been enforced against creator data, and campaigns depend on
// that behavior.
func matchGenderRatio(_ schema.NormalizedCreator, _ schema.FilterState) bool {
	return true
}

// matchAudienceAge passes when the requested range overlaps the creator's
// audience range at all, not only on containment.
func matchAudienceAge(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if fs.AudienceAge == nil {
		return true
	}
	return c.AudienceAge.Overlaps(*fs.AudienceAge)
}

func matchInfluencerAge(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if fs.InfluencerAge == nil {
		return true
	}
	return fs.InfluencerAge.Contains(c.Age)
}

func matchLanguages(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if len(fs.Languages) == 0 {
		return true
	}
	return schema.ContainsFold(fs.Languages, c.Language)
}

func matchAudienceGroups(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if len(fs.AudienceGroups) == 0 {
		return true
	}
	for _, want := range fs.AudienceGroups {
		if schema.ContainsFold(c.AudienceGroups, want) {
			return true
		}
	}
	return false
}

func matchCategories(c schema.NormalizedCreator, fs schema.FilterState) bool {
	if len(fs.Categories) == 0 {
		return true
	}
	for _, want := range fs.Categories {
		if schema.ContainsFold(c.Categories, want) {
			return true
		}
	}
	return false
}
