package core

import (
	"math"

	"github.com/axees/scout/schema"
)

// Summarize derives the display aggregates for a filtered view. Averages
// are computed over the view only; selection counts cover both the full
// selection and its intersection with the view.
func Summarize(view []schema.NormalizedCreator, sel Selection) schema.Summary {
	s := schema.Summary{
		ResultCount:    len(view),
		SelectedCount:  sel.Count(),
		SelectedInView: sel.CountIn(view),
		TierCounts:     make(map[schema.TierCategory]int),
	}
	if len(view) == 0 {
		return s
	}

	engagementSum := 0.0
	costSum := 0
	s.MinCost = view[0].EstimatedCost
	s.MaxCost = view[0].EstimatedCost
	for _, c := range view {
		s.TotalReach += c.TotalFollowers
		engagementSum += c.AvgEngagement
		costSum += c.EstimatedCost
		if c.EstimatedCost < s.MinCost {
			s.MinCost = c.EstimatedCost
		}
		if c.EstimatedCost > s.MaxCost {
			s.MaxCost = c.EstimatedCost
		}
		s.TierCounts[c.TierCategory]++
	}

	s.AvgEngagement = math.Round(engagementSum/float64(len(view))*10) / 10
	s.AvgCost = int(math.Round(float64(costSum) / float64(len(view))))
	return s
}
