package core

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// Normalize converts a raw creator record into the flat, filter-ready shape.
// Missing optional fields receive fixed defaults so every predicate can rely
// on populated values. Derived fields are computed here and nowhere else.
func Normalize(raw schema.RawCreator) schema.NormalizedCreator {
	totalFollowers := 0
	engagementSum := 0.0
	platforms := make([]string, 0, len(raw.Platforms))
	for _, ps := range raw.Platforms {
		totalFollowers += ps.Followers
		engagementSum += ps.Engagement
		name := strings.ToLower(strings.TrimSpace(ps.Platform))
		if name != "" {
			platforms = append(platforms, name)
		}
	}

	// Mean over platform count, never the shorter platforms slice. An empty
	// record divides by one and yields zero.
	denom := len(raw.Platforms)
	if denom < 1 {
		denom = 1
	}
	avgEngagement := math.Round(engagementSum/float64(denom)*10) / 10

	cost, breakdown := EstimateCostBreakdown(totalFollowers, avgEngagement)

	nc := schema.NormalizedCreator{
		ID:       raw.ID,
		Name:     raw.Name,
		Handle:   raw.Handle,
		Bio:      raw.Bio,
		Location: raw.Location,
		Avatar:   raw.Avatar,

		TotalFollowers: totalFollowers,
		AvgEngagement:  avgEngagement,
		Platforms:      platforms,
		Categories:     raw.Categories,

		Tier:          schema.TierForFollowers(totalFollowers),
		EstimatedCost: cost,
		TierCategory:  schema.CategoryForCost(cost),
		CostBreakdown: breakdown,

		PostingFrequency: raw.PostingFrequency,
		Country:          raw.Country,
		City:             raw.City,
		Language:         raw.Language,
		Age:              raw.Age,
		AudienceGroups:   raw.AudienceGroups,
	}

	if len(nc.Categories) == 0 {
		nc.Categories = []string{schema.DefaultCategory}
	}
	if nc.PostingFrequency == "" {
		nc.PostingFrequency = schema.DefaultPostingFrequency
	}
	if nc.Country == "" {
		nc.Country = schema.DefaultCountry
	}
	if nc.City == "" {
		nc.City = schema.DefaultCity
	}
	if nc.Language == "" {
		nc.Language = schema.DefaultLanguage
	}
	if nc.Age == 0 {
		nc.Age = schema.DefaultAge
	}

	if raw.AudienceGender != nil {
		nc.AudienceGender = *raw.AudienceGender
	} else {
		nc.AudienceGender = schema.GenderSplit{
			Male:   schema.DefaultGenderMale,
			Female: schema.DefaultGenderFemale,
		}
	}
	if raw.AudienceAge != nil {
		nc.AudienceAge = *raw.AudienceAge
	} else {
		nc.AudienceAge = schema.AgeRange{
			Min: schema.DefaultAudienceAgeMin,
			Max: schema.DefaultAudienceAgeMax,
		}
	}

	return nc
}

// NormalizeAll normalizes a batch of raw creators with a worker pool.
// Output order matches input order regardless of worker scheduling.
func NormalizeAll(ctx context.Context, cfg *contract.Config, raws []schema.RawCreator) []schema.NormalizedCreator {
	type indexed struct {
		idx     int
		creator schema.NormalizedCreator
	}

	workCh := make(chan int, len(raws))
	resultCh := make(chan indexed, len(raws))
	var wg sync.WaitGroup

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for i := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				resultCh <- indexed{idx: i, creator: Normalize(raws[i])}
			}
		})
	}

	for i := range raws {
		workCh <- i
	}
	close(workCh)

	wg.Wait()
	close(resultCh)

	results := make([]schema.NormalizedCreator, len(raws))
	for r := range resultCh {
		results[r.idx] = r.creator
	}
	return results
}
