package catalog

import (
	"errors"
	"fmt"

	"github.com/axees/scout/internal/parquet"
)

// ExecuteCatalogExport exports the stored catalog to a Parquet file.
func ExecuteCatalogExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetCatalogStore()
	if store == nil {
		return errors.New("catalog storage is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get catalog status: %w", err)
	}
	if status.TotalCreators == 0 {
		return errors.New("no catalog data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total creators: %d\n", status.TotalCreators)

	records, err := store.GetAll()
	if err != nil {
		return fmt.Errorf("failed to retrieve catalog records: %w", err)
	}

	if err := parquet.WriteCatalogEntriesParquet(records, outputFile); err != nil {
		return fmt.Errorf("failed to write catalog export: %w", err)
	}
	fmt.Printf("Exported %d creators to: %s\n", len(records), outputFile)

	return nil
}
