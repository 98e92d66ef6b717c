package cmd

import (
	"fmt"

	"github.com/axees/scout/internal/catalog"
	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogSetup loads minimal configuration needed for catalog operations.
// This is used by commands that need catalog access without full shared setup.
func catalogSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get catalog-related config values
	backend := schema.DatabaseBackend(viper.GetString("catalog-backend"))
	connStr := viper.GetString("catalog-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the catalog with the loaded config
	if err := catalog.InitCatalog(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}

	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// catalogSetupWrapper wraps catalogSetup to provide PreRunE for catalog commands.
func catalogSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogSetup()
}

// catalogMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create tables,
// allowing migrations to run on a fresh database.
func catalogMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get catalog-related config values
	backend := schema.DatabaseBackend(viper.GetString("catalog-backend"))
	connStr := viper.GetString("catalog-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SqliteBackend && connStr == "" {
		connStr = catalog.GetDBFilePath()
	}

	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = connStr

	return nil
}

// catalogMigrateSetupWrapper wraps catalogMigrateSetup to provide PreRunE for migrate command.
func catalogMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogMigrateSetup()
}

// catalogCmd focused on catalog data management.
//
// Note: Catalog subcommands use minimal initialization (catalogSetup) instead of
// the full sharedSetup used by discovery commands. This avoids filter parsing
// and full config processing for simple catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the imported creator catalog",
	Long: `Manage the durable catalog of imported creators.

The catalog lets you import creator datasets once and run many
discoveries against them without carrying JSON files around. Records
are stored with their derived pricing columns for quick inspection.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  import  - Load creators from a JSON file into the catalog
  status  - Show catalog statistics and connection info
  export  - Export catalog records to Parquet for analytics
  clear   - Remove all catalog data
  migrate - Run database schema migrations

Examples:
  # Import a dataset, then discover against it
  scout catalog import creators.json
  scout discover --tiers premium`,
}

// catalogImportCmd loads creators from a JSON file into the catalog.
var catalogImportCmd = &cobra.Command{
	Use:   "import <creators-file>",
	Short: "Load creators from a JSON file into the catalog",
	Long: `Parse a creators JSON file and store every record in the catalog.

Each creator is normalized and priced on the way in, so the stored
record carries its follower total, engagement rate, tier and estimated
cost alongside the raw payload. Re-importing a creator ID replaces the
previous record.

Examples:
  # Import into the default SQLite catalog
  scout catalog import creators.json

  # Import into PostgreSQL (set connection string via env variable)
  SCOUT_CATALOG_BACKEND=postgres SCOUT_CATALOG_DB_CONNECT="..." scout catalog import creators.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		store := catalog.Manager.GetCatalogStore()
		if store == nil {
			contract.LogFatal("Cannot import creators", fmt.Errorf("catalog backend is disabled"))
		}
		count, err := catalog.ImportCreators(rootCtx, store, args[0])
		if err != nil {
			contract.LogFatal("Failed to import creators", err)
		}
		fmt.Printf("Imported %d creators into the %s catalog.\n", count, cfg.CatalogBackend)
	},
}

// catalogClearCmd clears the catalog.
var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all imported creator data",
	Long: `Delete all imported creators from the configured backend.

Use this when:
- A dataset was imported by mistake
- Creator data is stale and a fresh import is coming
- Switching to a different creator universe

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the catalog table

Examples:
  # Clear the SQLite catalog (default)
  scout catalog clear

  # Clear a MySQL catalog (set connection string via env variable)
  SCOUT_CATALOG_BACKEND=mysql SCOUT_CATALOG_DB_CONNECT="..." scout catalog clear`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := catalog.ClearCatalog(cfg.CatalogBackend, catalog.GetDBFilePath(), cfg.CatalogDBConnect); err != nil {
			contract.LogFatal("Failed to clear catalog", err)
		}
		fmt.Println("Catalog cleared successfully.")
	},
}

// catalogStatusCmd shows catalog status.
var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display catalog statistics and connection details",
	Long: `Show detailed information about the creator catalog.

Displays:
- Backend type and connection status
- Total number of imported creators
- Last and oldest import timestamps
- Catalog database size

Use this to:
- Verify the catalog is connected and populated
- Check when data was last imported
- Debug catalog-related issues

Examples:
  # Check catalog status
  scout catalog status`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := catalog.Manager.GetCatalogStore()
		if store == nil {
			contract.LogFatal("Cannot get catalog status", fmt.Errorf("catalog backend is disabled"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get catalog status", err)
		}
		catalog.PrintCatalogStatus(status)
	},
}

// catalogExportCmd exports catalog records to a Parquet file.
var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export catalog records to Parquet for analytics",
	Long: `Export all imported creators to Parquet format for analytics tools.

Each record carries the creator ID, raw payload, import timestamp and
the derived pricing columns (followers, engagement, tier, cost).

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export the catalog
  scout catalog export --output-file creators.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT tier, count(*) FROM read_parquet('creators.parquet') GROUP BY tier"`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := catalog.ExecuteCatalogExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export catalog", err)
		}
	},
}

// catalogMigrateCmd runs database migrations for the catalog store.
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the creator catalog.

Migrations allow:
- Upgrading to new schema versions when Scout is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  scout catalog migrate

  # Migrate to specific version
  scout catalog migrate --target-version 2

  # Rollback to previous version
  scout catalog migrate --target-version 0`,
	PreRunE: catalogMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := catalog.MigrateCatalog(cfg.CatalogBackend, cfg.CatalogDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
