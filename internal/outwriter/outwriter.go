// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCreators prints discovery results using the configured output format.
func (ow *OutWriter) WriteCreators(result schema.DiscoveryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCreatorResults(result, cfg, duration)
}

// WriteEstimate prints a standalone cost estimate using the configured output format.
func (ow *OutWriter) WriteEstimate(est schema.EstimateResult, cfg *contract.Config) error {
	return PrintEstimateResult(est, cfg)
}

// WriteTiers prints the pricing tier definitions using the configured output format.
func (ow *OutWriter) WriteTiers(cfg *contract.Config) error {
	return PrintTierDefinitions(cfg)
}
