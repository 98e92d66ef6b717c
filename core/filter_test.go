package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axees/scout/schema"
)

// fixtureCreators returns a small normalized roster spanning the tiers.
func fixtureCreators() []schema.NormalizedCreator {
	raws := []schema.RawCreator{
		{
			ID: "nano-1", Name: "Jo Small", Handle: "@josmall", Bio: "Fitness coach in training",
			Platforms:  []schema.PlatformStat{{Platform: "Instagram", Followers: 5_000, Engagement: 7.0}},
			Categories: []string{"Fitness"}, Country: "USA", City: "Austin", Language: "English",
		},
		{
			ID: "micro-1", Name: "Sam Mid", Handle: "@sammid", Bio: "Daily cooking videos",
			Location:         "Downtown Toronto",
			Platforms:        []schema.PlatformStat{{Platform: "TikTok", Followers: 50_000, Engagement: 5.5}},
			Categories:       []string{"Food"}, Country: "Canada", City: "Toronto",
			PostingFrequency: "Daily", Language: "French", Age: 35,
			AudienceAge:      &schema.AgeRange{Min: 25, Max: 44},
			AudienceGroups:   []string{"Foodies"},
		},
		{
			ID: "mega-1", Name: "Max Huge", Handle: "@maxhuge", Bio: "Global travel content",
			Platforms:  []schema.PlatformStat{{Platform: "YouTube", Followers: 2_000_000, Engagement: 3.0}},
			Categories: []string{"Travel"}, Country: "USA", City: "Los Angeles",
		},
	}
	out := make([]schema.NormalizedCreator, len(raws))
	for i, r := range raws {
		out[i] = Normalize(r)
	}
	return out
}

func TestFilterUnconstrainedPassesAll(t *testing.T) {
	creators := fixtureCreators()
	got := Filter(creators, schema.NewFilterState())
	assert.Equal(t, creators, got, "unconstrained state passes every creator in order")
}

func TestFilterSearch(t *testing.T) {
	creators := fixtureCreators()

	// One query per searchable field: name, location, category, handle,
	// country, city.
	cases := []struct {
		query string
		want  string
	}{
		{"jo sm", "nano-1"},
		{"DOWNTOWN", "micro-1"},
		{"travel", "mega-1"},
		{"@max", "mega-1"},
		{"canada", "micro-1"},
		{"austin", "nano-1"},
	}
	for _, tc := range cases {
		fs := schema.NewFilterState()
		fs.Search = tc.query
		got := Filter(creators, fs)
		assert.Len(t, got, 1, "query %q", tc.query)
		assert.Equal(t, tc.want, got[0].ID, "query %q", tc.query)
	}

	fs := schema.NewFilterState()
	fs.Search = "cooking"
	assert.Empty(t, Filter(creators, fs), "bio text is not searchable")

	fs.Search = "nothing-matches-this"
	assert.Empty(t, Filter(creators, fs), "unmatched search yields empty, non-nil slice")
}

func TestFilterPriceRange(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.PriceRange = schema.PriceRange{Min: 0, Max: 999}
	got := Filter(creators, fs)
	assert.Len(t, got, 2, "nano and micro estimates fall under $1000")

	fs.PriceRange = schema.PriceRange{Min: 5_000, Max: schema.DefaultMaxPrice}
	got = Filter(creators, fs)
	assert.Len(t, got, 1, "only the mega creator quotes at premium prices")
	assert.Equal(t, "mega-1", got[0].ID)
}

func TestFilterTierCategories(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.TierCategories = []schema.TierCategory{schema.CategoryBudget}
	got := Filter(creators, fs)
	for _, c := range got {
		assert.Equal(t, schema.CategoryBudget, c.TierCategory, "tier filter matches on cost category, not follower tier")
	}
	assert.Len(t, got, 2)
}

func TestFilterPlatformsAndBucket(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.Platforms = []string{"tiktok", "youtube"}
	got := Filter(creators, fs)
	assert.Len(t, got, 2, "platform filter is any-of")

	fs = schema.NewFilterState()
	fs.FollowerBucket = schema.BucketMega
	got = Filter(creators, fs)
	assert.Len(t, got, 1)
	assert.Equal(t, "mega-1", got[0].ID)

	fs.FollowerBucket = schema.BucketAll
	assert.Len(t, Filter(creators, fs), 3, "bucket all passes everyone")
}

func TestFilterLocationModes(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.LocationMode = schema.LocationCountry
	fs.Countries = []string{"usa"}
	fs.Cities = []string{"Toronto"} // ignored in country mode
	got := Filter(creators, fs)
	assert.Len(t, got, 2, "country mode matches countries case-insensitively and ignores cities")

	fs = schema.NewFilterState()
	fs.LocationMode = schema.LocationLocal
	fs.Cities = []string{"toronto"}
	fs.Countries = []string{"USA"} // ignored in local mode
	got = Filter(creators, fs)
	assert.Len(t, got, 1, "local mode matches cities and ignores countries")
	assert.Equal(t, "micro-1", got[0].ID)

	fs.LocationMode = schema.LocationEvent
	got = Filter(creators, fs)
	assert.Len(t, got, 3, "event mode imposes no location constraint even with cities selected")
}

func TestFilterGenderRatioNeverConstrains(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.GenderRatio = &schema.GenderSplit{Male: 100, Female: 0}
	got := Filter(creators, fs)
	assert.Len(t, got, 3, "gender ratio is recorded but never enforced")
}

func TestFilterAudienceAgeOverlap(t *testing.T) {
	creators := fixtureCreators()

	// micro-1 has audience 25-44; the two defaults are 18-34.
	fs := schema.NewFilterState()
	fs.AudienceAge = &schema.AgeRange{Min: 40, Max: 60}
	got := Filter(creators, fs)
	assert.Len(t, got, 1, "partial overlap is enough to match")
	assert.Equal(t, "micro-1", got[0].ID)

	fs.AudienceAge = &schema.AgeRange{Min: 45, Max: 60}
	assert.Empty(t, Filter(creators, fs), "disjoint audience ranges match nothing")
}

func TestFilterInfluencerAgeAndLanguages(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.InfluencerAge = &schema.AgeRange{Min: 30, Max: 40}
	got := Filter(creators, fs)
	assert.Len(t, got, 1, "only micro-1 declares an age inside 30-40")
	assert.Equal(t, "micro-1", got[0].ID)

	fs = schema.NewFilterState()
	fs.Languages = []string{"french"}
	got = Filter(creators, fs)
	assert.Len(t, got, 1)
	assert.Equal(t, "micro-1", got[0].ID)
}

func TestFilterGroupsAndCategories(t *testing.T) {
	creators := fixtureCreators()

	fs := schema.NewFilterState()
	fs.AudienceGroups = []string{"foodies"}
	got := Filter(creators, fs)
	assert.Len(t, got, 1)
	assert.Equal(t, "micro-1", got[0].ID)

	fs = schema.NewFilterState()
	fs.Categories = []string{"Fitness", "Travel"}
	got = Filter(creators, fs)
	assert.Len(t, got, 2, "category filter is any-of")
}

func TestFilterConjunction(t *testing.T) {
	creators := fixtureCreators()

	// All active predicates must pass together.
	fs := schema.NewFilterState()
	fs.Countries = []string{"USA"}
	fs.Platforms = []string{"youtube"}
	got := Filter(creators, fs)
	assert.Len(t, got, 1, "predicates combine with AND")
	assert.Equal(t, "mega-1", got[0].ID)

	fs.Search = "cooking" // contradicts the other predicates
	assert.Empty(t, Filter(creators, fs))
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	creators := fixtureCreators()
	snapshot := make([]schema.NormalizedCreator, len(creators))
	copy(snapshot, creators)

	fs := schema.NewFilterState()
	fs.Countries = []string{"USA"}
	got := Filter(creators, fs)

	assert.Equal(t, []string{"nano-1", "mega-1"}, []string{got[0].ID, got[1].ID}, "results keep input order, never re-sorted")
	assert.Equal(t, snapshot, creators, "input slice is never mutated")
}
