// Package parquet provides data structures and functions for exporting scout
// discovery data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/axees/scout/schema"
)

// CreatorResult represents one normalized creator row in a discovery export.
type CreatorResult struct {
	// Rank is the 1-based position in the filtered view
	Rank int32 `parquet:"rank,snappy"`

	// CreatorID is the upstream identifier for the creator
	CreatorID string `parquet:"creator_id,snappy"`

	// Name is the creator's display name
	Name string `parquet:"name,snappy"`

	// Handle is the creator's primary handle
	Handle string `parquet:"handle,snappy"`

	// TotalFollowers is the follower count summed across platforms
	TotalFollowers int64 `parquet:"total_followers,snappy"`

	// AvgEngagement is the mean engagement rate across platforms, in percent
	AvgEngagement float64 `parquet:"avg_engagement,snappy"`

	// EstimatedCost is the estimated campaign cost in whole dollars
	EstimatedCost int64 `parquet:"estimated_cost,snappy"`

	// Tier is the follower-derived size class
	Tier string `parquet:"tier,snappy"`

	// TierCategory is the cost-derived pricing class
	TierCategory string `parquet:"tier_category,snappy"`

	// Platforms is a pipe-joined list of lowercase platform names
	Platforms string `parquet:"platforms,snappy"`

	// Country is the creator's country
	Country string `parquet:"country,snappy"`

	// City is the creator's city
	City string `parquet:"city,snappy"`
}

// CatalogEntry represents a stored catalog row in a catalog export.
// This struct maps to the scout_creators database table.
type CatalogEntry struct {
	// CreatorID is the upstream identifier for the creator
	CreatorID string `parquet:"creator_id,snappy"`

	// Payload contains the raw creator JSON as imported
	Payload string `parquet:"payload,snappy"`

	// ImportedAt is when the record entered the catalog
	ImportedAt time.Time `parquet:"imported_at,snappy"`

	// Followers is the follower count at import time
	Followers int32 `parquet:"followers,snappy"`

	// Engagement is the engagement rate at import time, in percent
	Engagement float64 `parquet:"engagement,snappy"`

	// Tier is the follower-derived size class at import time
	Tier string `parquet:"tier,snappy"`

	// EstimatedCost is the estimated campaign cost at import time
	EstimatedCost int32 `parquet:"estimated_cost,snappy"`
}

// WriteCreatorResultsParquet writes a filtered creator view to a Parquet file.
func WriteCreatorResultsParquet(creators []schema.NormalizedCreator, outputPath string) error {
	rows := make([]CreatorResult, len(creators))
	for i, c := range creators {
		rows[i] = CreatorResult{
			Rank:           int32(i + 1),
			CreatorID:      c.ID,
			Name:           c.Name,
			Handle:         c.Handle,
			TotalFollowers: int64(c.TotalFollowers),
			AvgEngagement:  c.AvgEngagement,
			EstimatedCost:  int64(c.EstimatedCost),
			Tier:           string(c.Tier),
			TierCategory:   string(c.TierCategory),
			Platforms:      strings.Join(c.Platforms, "|"),
			Country:        c.Country,
			City:           c.City,
		}
	}
	return writeParquet(rows, outputPath)
}

// WriteCatalogEntriesParquet writes stored catalog records to a Parquet file.
func WriteCatalogEntriesParquet(records []schema.CreatorRecord, outputPath string) error {
	rows := make([]CatalogEntry, len(records))
	for i, r := range records {
		rows[i] = CatalogEntry{
			CreatorID:     r.ID,
			Payload:       string(r.Payload),
			ImportedAt:    r.ImportedAt,
			Followers:     r.Followers,
			Engagement:    r.Engagement,
			Tier:          r.Tier,
			EstimatedCost: r.EstimatedCost,
		}
	}
	return writeParquet(rows, outputPath)
}

// writeParquet writes rows to a Parquet file using struct schema inference.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the row struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
