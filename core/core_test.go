package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// stubSource is an in-memory CreatorSource for pipeline tests.
type stubSource struct {
	raws []schema.RawCreator
	err  error
}

func (s *stubSource) Load(_ context.Context) ([]schema.RawCreator, error) {
	return s.raws, s.err
}

func pipelineFixture() *stubSource {
	return &stubSource{raws: []schema.RawCreator{
		{ID: "a", Name: "Nano Nina", Platforms: []schema.PlatformStat{{Platform: "Instagram", Followers: 5_000, Engagement: 4.0}}},
		{ID: "b", Name: "Micro Mike", Platforms: []schema.PlatformStat{{Platform: "TikTok", Followers: 50_000, Engagement: 6.0}}},
		{ID: "c", Name: "Mega Mia", Platforms: []schema.PlatformStat{{Platform: "YouTube", Followers: 2_000_000, Engagement: 3.5}}},
	}}
}

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Workers:     4,
	}
}

func TestDiscoverCreatorsPipeline(t *testing.T) {
	cfg := baseConfig()
	result, err := DiscoverCreators(context.Background(), cfg, pipelineFixture())
	require.NoError(t, err)

	require.Len(t, result.Creators, 3)
	tiers := []schema.Tier{result.Creators[0].Tier, result.Creators[1].Tier, result.Creators[2].Tier}
	assert.Equal(t, []schema.Tier{schema.TierNano, schema.TierMicro, schema.TierMega}, tiers, "tiers follow follower counts in input order")
	assert.Equal(t, 3, result.Summary.ResultCount)
}

func TestDiscoverCreatorsFollowerBucket(t *testing.T) {
	cfg := baseConfig()
	cfg.FollowerBucket = schema.BucketMega

	result, err := DiscoverCreators(context.Background(), cfg, pipelineFixture())
	require.NoError(t, err)

	require.Len(t, result.Creators, 1, "mega bucket keeps only the mega creator")
	assert.Equal(t, "c", result.Creators[0].ID)
}

func TestDiscoverCreatorsLimit(t *testing.T) {
	cfg := baseConfig()
	cfg.ResultLimit = 2

	result, err := DiscoverCreators(context.Background(), cfg, pipelineFixture())
	require.NoError(t, err)

	require.Len(t, result.Creators, 2, "limit truncates after filtering")
	assert.Equal(t, "a", result.Creators[0].ID, "truncation keeps the head of the ordered view")
	assert.Equal(t, 2, result.Summary.ResultCount, "summary covers the truncated view")
}

func TestDiscoverCreatorsSelection(t *testing.T) {
	cfg := baseConfig()
	cfg.SelectedIDs = []string{"b", "not-in-roster"}

	result, err := DiscoverCreators(context.Background(), cfg, pipelineFixture())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.SelectedCount, "selection is independent of the roster")
	assert.Equal(t, 1, result.Summary.SelectedInView, "only roster members count toward the view")
}

func TestDiscoverCreatorsSourceError(t *testing.T) {
	cfg := baseConfig()
	src := &stubSource{err: assert.AnError}

	_, err := DiscoverCreators(context.Background(), cfg, src)
	assert.ErrorIs(t, err, assert.AnError, "source failures propagate unchanged")
}
