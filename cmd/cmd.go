// Package cmd defines the command-line interface for scout.
package cmd

import (
	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)

	// Add the catalog subcommands to the parent catalog command
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogClearCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-creator metadata (platforms, location, language, frequency)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print the cost breakdown behind each estimate")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TableMode), "Output format: table or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("catalog-backend", string(schema.SqliteBackend), "Catalog backend: sqlite or mysql or postgres or none")
	rootCmd.PersistentFlags().String("catalog-db-connect", "", "Database connection string for mysql/postgres (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of discoverCmd to Viper
	discoverCmd.Flags().StringP("search", "s", "", "Case-insensitive match against name, location, categories, handle, country and city")
	discoverCmd.Flags().Int("min-price", 0, "Minimum estimated cost in dollars")
	discoverCmd.Flags().Int("max-price", schema.DefaultMaxPrice, "Maximum estimated cost in dollars")
	discoverCmd.Flags().String("tiers", "", "Comma-separated pricing classes: budget, standard, premium")
	discoverCmd.Flags().String("platforms", "", "Comma-separated platforms the creator must post on")
	discoverCmd.Flags().String("follower-size", string(schema.BucketAll), "Follower bucket: all, nano, micro, macro, mega")
	discoverCmd.Flags().String("posting-frequency", "", "Exact posting frequency (e.g. Daily, Weekly)")
	discoverCmd.Flags().String("location-mode", string(schema.DefaultLocationMode), "Location matching: country, local, event")
	discoverCmd.Flags().String("countries", "", "Comma-separated countries for country mode")
	discoverCmd.Flags().String("cities", "", "Comma-separated cities for local mode")
	discoverCmd.Flags().String("gender-ratio", "", "Audience gender split as male:female (e.g. 45:55)")
	discoverCmd.Flags().String("audience-age", "", "Audience age range as min-max (e.g. 18-34)")
	discoverCmd.Flags().String("influencer-age", "", "Creator age range as min-max (e.g. 21-40)")
	discoverCmd.Flags().String("languages", "", "Comma-separated languages the creator must speak")
	discoverCmd.Flags().String("audience-groups", "", "Comma-separated audience interest groups")
	discoverCmd.Flags().String("categories", "", "Comma-separated content categories")
	discoverCmd.Flags().String("select", "", "Comma-separated creator IDs to mark as selected")
	if err := viper.BindPFlags(discoverCmd.Flags()); err != nil {
		contract.LogFatal("Error binding discover flags", err)
	}

	// Bind all flags of estimateCmd to Viper
	estimateCmd.Flags().Int("followers", 0, "Total follower count across platforms")
	estimateCmd.Flags().Float64("engagement", 0, "Average engagement rate as a percentage")
	if err := viper.BindPFlags(estimateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding estimate flags", err)
	}

	// Bind all flags of catalogMigrateCmd to Viper
	catalogMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(catalogMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog migrate flags", err)
	}
}
