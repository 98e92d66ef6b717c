// Package core implements discovery logic for the scout CLI.
package core

import (
	"math"

	"github.com/axees/scout/schema"
)

// EstimateCost estimates a per-campaign cost in whole dollars from a
// creator's total followers and average engagement rate (percent).
//
// The per-follower rate falls as reach grows, engagement scales the base
// with a floor so weak engagement never zeroes a quote, and the result is
// clamped to a tier-dependent minimum.
func EstimateCost(followers int, engagement float64) int {
	cost, _ := EstimateCostBreakdown(followers, engagement)
	return cost
}

// EstimateCostBreakdown is EstimateCost plus the component values used
// in explain mode.
func EstimateCostBreakdown(followers int, engagement float64) (int, map[schema.BreakdownKey]float64) {
	var rate float64
	switch {
	case followers >= schema.ThresholdMega:
		rate = schema.RateMega
	case followers >= schema.ThresholdMacro:
		rate = schema.RateMacro
	case followers >= schema.ThresholdMicro:
		rate = schema.RateMicro
	default:
		rate = schema.RateNano
	}

	base := float64(followers) * rate
	multiplier := math.Max(engagement/100.0, schema.MultiplierFloor)
	cost := int(math.Round(base * multiplier))

	floor := schema.FloorDefault
	if followers < schema.ThresholdMicro {
		floor = schema.FloorNano
	}
	if cost < floor {
		cost = floor
	}

	breakdown := map[schema.BreakdownKey]float64{
		schema.BreakdownRate:       rate,
		schema.BreakdownBase:       base,
		schema.BreakdownMultiplier: multiplier,
		schema.BreakdownFloor:      float64(floor),
	}
	return cost, breakdown
}
