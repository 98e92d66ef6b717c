package schema

// FilterState is the complete set of discovery predicates for one pass.
// Zero or empty slice fields mean "no constraint" for that predicate.
// Predicates are evaluated in declaration order with short-circuit on the
// first failure.
type FilterState struct {
	Search           string         // Substring match on name, location, categories, handle, country or city
	PriceRange       PriceRange     // Inclusive estimated-cost bounds
	TierCategories   []TierCategory // Cost-derived pricing classes
	Platforms        []string       // Lowercase platform names, any-of
	FollowerBucket   FollowerBucket // Coarse follower size class
	PostingFrequency string         // Exact match
	LocationMode     LocationMode   // Selects country vs city matching
	Countries        []string       // Any-of, used when LocationMode is country
	Cities           []string       // Any-of, used when LocationMode is local
	GenderRatio      *GenderSplit   // Parsed but not enforced; kept for display parity
	AudienceAge      *AgeRange      // Range overlap against the creator's audience
	InfluencerAge    *AgeRange      // Inclusive bounds on the creator's own age
	Languages        []string       // Any-of
	AudienceGroups   []string       // Any-of
	Categories       []string       // Any-of
}

// NewFilterState returns the unconstrained filter state used when no flags
// are set. Every creator passes it.
func NewFilterState() FilterState {
	return FilterState{
		PriceRange:     PriceRange{Min: 0, Max: DefaultMaxPrice},
		FollowerBucket: BucketAll,
		LocationMode:   DefaultLocationMode,
	}
}

// IsUnconstrained reports whether the state is equivalent to NewFilterState
// for matching purposes. Output layers use it to skip the filter pass.
func (f FilterState) IsUnconstrained() bool {
	return f.Search == "" &&
		f.PriceRange.Min <= 0 && f.PriceRange.Max >= DefaultMaxPrice &&
		len(f.TierCategories) == 0 &&
		len(f.Platforms) == 0 &&
		(f.FollowerBucket == BucketAll || f.FollowerBucket == "") &&
		f.PostingFrequency == "" &&
		len(f.Countries) == 0 &&
		len(f.Cities) == 0 &&
		f.AudienceAge == nil &&
		f.InfluencerAge == nil &&
		len(f.Languages) == 0 &&
		len(f.AudienceGroups) == 0 &&
		len(f.Categories) == 0
}
