package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// TierDefinition is the render model for a single pricing tier row.
type TierDefinition struct {
	Tier            schema.Tier `json:"tier"`
	MinFollowers    int         `json:"min_followers"`
	MaxFollowers    int         `json:"max_followers"` // 0 means unbounded
	RatePerFollower float64     `json:"rate_per_follower"`
	FloorCost       int         `json:"floor_cost"`
}

// buildTierDefinitions returns the fixed pricing ladder in ascending order.
func buildTierDefinitions() []TierDefinition {
	return []TierDefinition{
		{Tier: schema.TierNano, MinFollowers: 0, MaxFollowers: schema.ThresholdMicro - 1, RatePerFollower: schema.RateNano, FloorCost: schema.FloorNano},
		{Tier: schema.TierMicro, MinFollowers: schema.ThresholdMicro, MaxFollowers: schema.ThresholdMacro - 1, RatePerFollower: schema.RateMicro, FloorCost: schema.FloorDefault},
		{Tier: schema.TierMacro, MinFollowers: schema.ThresholdMacro, MaxFollowers: schema.ThresholdMega - 1, RatePerFollower: schema.RateMacro, FloorCost: schema.FloorDefault},
		{Tier: schema.TierMega, MinFollowers: schema.ThresholdMega, MaxFollowers: 0, RatePerFollower: schema.RateMega, FloorCost: schema.FloorDefault},
	}
}

// PrintTierDefinitions displays the formal definitions of all pricing tiers.
// This is a static display that does not require any creator data.
func PrintTierDefinitions(cfg *contract.Config) error {
	defs := buildTierDefinitions()

	switch cfg.Output {
	case schema.JSONMode:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVMode:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printTiersCSV(w, defs)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printTiersText(w, defs)
		}, "Wrote text")
	}
}

// printTiersText displays the pricing ladder in human-readable text format.
func printTiersText(w io.Writer, defs []TierDefinition) error {
	if _, err := fmt.Fprintf(w, "💰 Scout Pricing Tiers\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "======================\n\n"); err != nil {
		return err
	}
	for _, d := range defs {
		upper := "and up"
		if d.MaxFollowers > 0 {
			upper = "to " + schema.FormatFollowers(d.MaxFollowers)
		}
		if _, err := fmt.Fprintf(w, "%-6s %s followers %s\n", d.Tier, schema.FormatFollowers(d.MinFollowers), upper); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "       rate $%.3f per follower, floor %s\n", d.RatePerFollower, schema.FormatCost(d.FloorCost)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nCost = round(followers * rate * max(engagement/100, %.1f)), clamped to the floor.\n", schema.MultiplierFloor); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Pricing classes: Budget < %s, Standard < %s, Premium at or above.\n",
		schema.FormatCost(schema.ThresholdStandard), schema.FormatCost(schema.ThresholdPremium)); err != nil {
		return err
	}
	return nil
}

// printTiersCSV displays the pricing ladder in CSV format.
func printTiersCSV(w io.Writer, defs []TierDefinition) error {
	header := []string{"tier", "min_followers", "max_followers", "rate_per_follower", "floor_cost"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range defs {
			rec := []string{
				string(d.Tier),
				strconv.Itoa(d.MinFollowers),
				strconv.Itoa(d.MaxFollowers),
				fmt.Sprintf("%.3f", d.RatePerFollower),
				strconv.Itoa(d.FloorCost),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
