package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axees/scout/schema"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name       string
		followers  int
		engagement float64
		want       int
	}{
		// Rate boundaries
		{"mega follower count uses lowest rate", 2_000_000, 100, 16_000},
		{"macro follower count", 500_000, 100, 6_000},
		{"micro follower count", 50_000, 100, 750},
		{"nano follower count", 5_000, 100, 250},

		// Engagement floor: zero engagement still produces the 0.6 multiplier
		{"zero engagement hits multiplier floor", 5_000, 0, 250},
		{"zero engagement micro", 50_000, 0, 500},
		{"zero engagement macro", 500_000, 0, 3_600},
		{"low engagement below floor behaves like floor", 500_000, 30, 3_600},
		{"engagement above floor scales linearly", 500_000, 80, 4_800},

		// Cost floors
		{"tiny nano account floors at 250", 100, 5, 250},
		{"small micro account floors at 500", 10_000, 0, 500},

		// Threshold edges
		{"exactly 1M followers is mega rate", 1_000_000, 100, 8_000},
		{"just below 1M is macro rate", 999_999, 100, 12_000},
		{"exactly 100k is macro rate", 100_000, 100, 1_200},
		{"exactly 10k is micro rate", 10_000, 100, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(tt.followers, tt.engagement)
			assert.Equal(t, tt.want, got, "EstimateCost(%d, %v) should match", tt.followers, tt.engagement)
		})
	}
}

func TestEstimateCostBreakdown(t *testing.T) {
	cost, breakdown := EstimateCostBreakdown(500_000, 80)

	assert.Equal(t, 4_800, cost, "cost should match the standalone estimate")
	assert.Equal(t, schema.RateMacro, breakdown[schema.BreakdownRate], "macro rate should be recorded")
	assert.InDelta(t, 6_000, breakdown[schema.BreakdownBase], 0.01, "base should be followers times rate")
	assert.InDelta(t, 0.8, breakdown[schema.BreakdownMultiplier], 0.001, "multiplier should be engagement over 100")
	assert.Equal(t, float64(schema.FloorDefault), breakdown[schema.BreakdownFloor], "non-nano floors at 500")

	_, breakdown = EstimateCostBreakdown(5_000, 10)
	assert.InDelta(t, schema.MultiplierFloor, breakdown[schema.BreakdownMultiplier], 0.001, "weak engagement clamps to the multiplier floor")
	assert.Equal(t, float64(schema.FloorNano), breakdown[schema.BreakdownFloor], "nano accounts floor at 250")
}

// FuzzEstimateCost checks structural properties of the estimator that must
// hold for any input: costs respect the tier floor and engagement never
// lowers a quote below the floored baseline.
func FuzzEstimateCost(f *testing.F) {
	f.Add(5_000, 3.5)
	f.Add(50_000, 0.0)
	f.Add(1_500_000, 12.0)
	f.Add(0, -5.0)

	f.Fuzz(func(t *testing.T, followers int, engagement float64) {
		if followers < 0 || followers > 1_000_000_000 {
			t.Skip()
		}
		if engagement < 0 || engagement > 1_000 {
			t.Skip()
		}

		cost := EstimateCost(followers, engagement)

		floor := schema.FloorDefault
		if followers < schema.ThresholdMicro {
			floor = schema.FloorNano
		}
		assert.GreaterOrEqual(t, cost, floor, "cost can never fall below the tier floor")

		// More engagement can never make a creator cheaper.
		higher := EstimateCost(followers, engagement+10)
		assert.GreaterOrEqual(t, higher, cost, "cost must be non-decreasing in engagement")
	})
}
