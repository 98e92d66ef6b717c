package outwriter

import (
	"fmt"
	"io"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// PrintEstimateResult outputs a standalone cost estimate, dispatching based on
// the output format configured.
func PrintEstimateResult(est schema.EstimateResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONMode:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, est)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printEstimateText(w, est, cfg)
		}, "Wrote text")
	}
}

// printEstimateText displays the estimate in human-readable text format.
func printEstimateText(w io.Writer, est schema.EstimateResult, cfg *contract.Config) error {
	labelFunc := contract.GetPlainLabel
	if cfg.UseColors {
		labelFunc = contract.GetColorLabel
	}

	if _, err := fmt.Fprintf(w, "Campaign estimate for %s followers at %.1f%% engagement\n",
		schema.FormatFollowers(est.Followers), est.Engagement); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tier: %s  Cost: %s  Class: %s\n",
		est.Tier, schema.FormatCost(est.EstimatedCost), labelFunc(est.EstimatedCost)); err != nil {
		return err
	}
	if cfg.Explain {
		if _, err := fmt.Fprintf(w, "Breakdown: %s\n", formatCostBreakdown(est.Breakdown)); err != nil {
			return err
		}
	}
	return nil
}
