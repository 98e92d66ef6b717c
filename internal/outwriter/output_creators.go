package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/internal/parquet"
	"github.com/axees/scout/schema"
)

// PrintCreatorResults outputs discovery results, dispatching based on the output format configured.
func PrintCreatorResults(result schema.DiscoveryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONMode:
		if err := writeCreatorJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVMode:
		if err := writeCreatorCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetMode:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		if err := parquet.WriteCreatorResultsParquet(result.Creators, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCreatorTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeCreatorJSONResults handles opening the file and calling the JSON writer.
func writeCreatorJSONResults(result schema.DiscoveryResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForCreators(w, result)
	}, "Wrote JSON")
}

// writeCreatorCSVResults handles opening the file and calling the CSV writer.
func writeCreatorCSVResults(result schema.DiscoveryResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForCreators(csvWriter, result.Creators, fmtFloat)
	}, "Wrote CSV")
}

// writeCreatorTable generates and writes the human-readable table.
func writeCreatorTable(result schema.DiscoveryResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Name", "Handle", "Followers", "Engage%", "Cost", "Tier"}
	if cfg.Detail {
		headers = append(headers, "Platforms", "Country", "City", "Language", "Frequency")
	}
	if cfg.Explain {
		headers = append(headers, "Breakdown")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	labelFunc := contract.GetPlainLabel
	if cfg.UseColors {
		labelFunc = contract.GetColorLabel
	}

	var data [][]string
	for i, c := range result.Creators {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateText(c.Name, GetMaxTableNameWidth(cfg)), // Name
			c.Handle,                               // Handle
			schema.FormatFollowers(c.TotalFollowers), // Followers
			fmtFloat(c.AvgEngagement),              // Engagement
			schema.FormatCost(c.EstimatedCost),     // Cost
			labelFunc(c.EstimatedCost),             // Tier label
		}
		if cfg.Detail {
			row = append(
				row,
				strings.Join(c.Platforms, "|"), // Platforms
				c.Country,                      // Country
				c.City,                         // City
				c.Language,                     // Language
				c.PostingFrequency,             // Frequency
			)
		}
		if cfg.Explain {
			row = append(row, formatCostBreakdown(c.CostBreakdown))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary footer
	s := result.Summary
	if _, err := fmt.Fprintf(writer, "Showing %d creators (total reach: %s, avg engagement: %s%%, avg cost: %s)\n",
		s.ResultCount, schema.FormatFollowers(s.TotalReach), fmtFloat(s.AvgEngagement), schema.FormatCost(s.AvgCost)); err != nil {
		return err
	}
	if s.SelectedCount > 0 {
		if _, err := fmt.Fprintf(writer, "Selected: %d total, %d in view\n", s.SelectedCount, s.SelectedInView); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Discovery completed in %v with %d workers. Catalog backend: %s\n",
		duration, cfg.Workers, cfg.CatalogBackend); err != nil {
		return err
	}
	return nil
}

// formatCostBreakdown formats the pricing components for the explain column.
func formatCostBreakdown(breakdown map[schema.BreakdownKey]float64) string {
	if breakdown == nil {
		return ""
	}
	return fmt.Sprintf("rate=%.3f base=%.0f mult=%.2f floor=%.0f",
		breakdown[schema.BreakdownRate],
		breakdown[schema.BreakdownBase],
		breakdown[schema.BreakdownMultiplier],
		breakdown[schema.BreakdownFloor])
}

// writeCSVResultsForCreators writes the discovery results in CSV format.
func writeCSVResultsForCreators(w *csv.Writer, creators []schema.NormalizedCreator, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"rank",
		"id",
		"name",
		"handle",
		"followers",
		"engagement",
		"cost",
		"tier",
		"tier_category",
		"platforms",
		"country",
		"city",
		"language",
		"posting_frequency",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, c := range creators {
		rec := []string{
			strconv.Itoa(i + 1),               // Rank
			c.ID,                              // ID
			c.Name,                            // Name
			c.Handle,                          // Handle
			strconv.Itoa(c.TotalFollowers),    // Followers
			fmtFloat(c.AvgEngagement),         // Engagement
			strconv.Itoa(c.EstimatedCost),     // Cost
			string(c.Tier),                    // Follower tier
			contract.GetPlainLabel(c.EstimatedCost), // Pricing class
			strings.Join(c.Platforms, "|"),    // Platforms
			c.Country,                         // Country
			c.City,                            // City
			c.Language,                        // Language
			c.PostingFrequency,                // Frequency
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForCreators writes the discovery results in JSON format.
func writeJSONResultsForCreators(w io.Writer, result schema.DiscoveryResult) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONCreatorResult struct {
		Rank int `json:"rank"`
		schema.NormalizedCreator
	}

	creators := make([]JSONCreatorResult, len(result.Creators))
	for i, c := range result.Creators {
		creators[i] = JSONCreatorResult{
			Rank:              i + 1,
			NormalizedCreator: c,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, struct {
		Creators []JSONCreatorResult `json:"creators"`
		Summary  schema.Summary      `json:"summary"`
	}{Creators: creators, Summary: result.Summary})
}
