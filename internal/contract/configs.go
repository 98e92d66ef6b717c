package contract

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/axees/scout/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a discovery run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile   string // Path to a creators JSON file (empty = catalog backend)
	ResultLimit int
	Workers     int
	Detail      bool
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Search           string
	PriceRange       schema.PriceRange
	TierCategories   []schema.TierCategory
	Platforms        []string
	FollowerBucket   schema.FollowerBucket
	PostingFrequency string
	LocationMode     schema.LocationMode
	Countries        []string
	Cities           []string
	GenderRatio      *schema.GenderSplit
	AudienceAge      *schema.AgeRange
	InfluencerAge    *schema.AgeRange
	Languages        []string
	AudienceGroups   []string
	Categories       []string
	SelectedIDs      []string

	// Estimate command inputs
	EstimateFollowers  int
	EstimateEngagement float64

	CatalogBackend   schema.DatabaseBackend
	CatalogDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	CatalogBackend   string `mapstructure:"catalog-backend"`
	CatalogDBConnect string `mapstructure:"catalog-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from discoverCmd.Flags() ---
	Search           string `mapstructure:"search"`
	MinPrice         int    `mapstructure:"min-price"`
	MaxPrice         int    `mapstructure:"max-price"`
	Tiers            string `mapstructure:"tiers"`
	Platforms        string `mapstructure:"platforms"`
	FollowerSize     string `mapstructure:"follower-size"`
	PostingFrequency string `mapstructure:"posting-frequency"`
	LocationMode     string `mapstructure:"location-mode"`
	Countries        string `mapstructure:"countries"`
	Cities           string `mapstructure:"cities"`
	GenderRatio      string `mapstructure:"gender-ratio"`
	AudienceAge      string `mapstructure:"audience-age"`
	InfluencerAge    string `mapstructure:"influencer-age"`
	Languages        string `mapstructure:"languages"`
	AudienceGroups   string `mapstructure:"audience-groups"`
	Categories       string `mapstructure:"categories"`
	Selected         string `mapstructure:"select"`
	Explain          bool   `mapstructure:"explain"`

	// --- Fields from estimateCmd.Flags() ---
	Followers  int     `mapstructure:"followers"`
	Engagement float64 `mapstructure:"engagement"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.TierCategories = append([]schema.TierCategory(nil), c.TierCategories...)
	clone.Platforms = append([]string(nil), c.Platforms...)
	clone.Countries = append([]string(nil), c.Countries...)
	clone.Cities = append([]string(nil), c.Cities...)
	clone.Languages = append([]string(nil), c.Languages...)
	clone.AudienceGroups = append([]string(nil), c.AudienceGroups...)
	clone.Categories = append([]string(nil), c.Categories...)
	clone.SelectedIDs = append([]string(nil), c.SelectedIDs...)
	if c.GenderRatio != nil {
		gr := *c.GenderRatio
		clone.GenderRatio = &gr
	}
	if c.AudienceAge != nil {
		aa := *c.AudienceAge
		clone.AudienceAge = &aa
	}
	if c.InfluencerAge != nil {
		ia := *c.InfluencerAge
		clone.InfluencerAge = &ia
	}
	return &clone
}

// FilterState builds the discovery filter state from the validated config.
func (c *Config) FilterState() schema.FilterState {
	fs := schema.NewFilterState()
	fs.Search = c.Search
	fs.PriceRange = c.PriceRange
	fs.TierCategories = c.TierCategories
	fs.Platforms = c.Platforms
	if c.FollowerBucket != "" {
		fs.FollowerBucket = c.FollowerBucket
	}
	fs.PostingFrequency = c.PostingFrequency
	if c.LocationMode != "" {
		fs.LocationMode = c.LocationMode
	}
	fs.Countries = c.Countries
	fs.Cities = c.Cities
	fs.GenderRatio = c.GenderRatio
	fs.AudienceAge = c.AudienceAge
	fs.InfluencerAge = c.InfluencerAge
	fs.Languages = c.Languages
	fs.AudienceGroups = c.AudienceGroups
	fs.Categories = c.Categories
	return fs
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilterInputs(cfg, input); err != nil {
		return err
	}
	cfg.InputFile = strings.TrimSpace(input.InputFileStr)
	if input.Followers < 0 {
		return fmt.Errorf("followers cannot be negative (received %d)", input.Followers)
	}
	if input.Engagement < 0 {
		return fmt.Errorf("engagement cannot be negative (received %g)", input.Engagement)
	}
	cfg.EstimateFollowers = input.Followers
	cfg.EstimateEngagement = input.Engagement
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SqliteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgresBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-filter fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be table, csv, json, parquet", cfg.Output)
	}

	// --- 4. Backend Validation ---
	cfg.CatalogBackend = schema.DatabaseBackend(strings.ToLower(input.CatalogBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CatalogBackend]; !ok {
		return fmt.Errorf("invalid catalog backend '%s'. must be sqlite, mysql, postgres, none", input.CatalogBackend)
	}
	cfg.CatalogDBConnect = input.CatalogDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CatalogBackend, cfg.CatalogDBConnect); err != nil {
		return err
	}

	return nil
}

// ApplyFilterInputs parses and validates discovery filter values onto cfg.
// Exposed so MCP handlers can reuse the exact flag parsing rules.
func ApplyFilterInputs(cfg *Config, input *ConfigRawInput) error {
	return processFilterInputs(cfg, input)
}

// processFilterInputs parses and validates every discovery filter flag.
func processFilterInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Search = strings.TrimSpace(input.Search)

	// --- Price Range ---
	if input.MinPrice < 0 {
		return fmt.Errorf("min-price cannot be negative (received %d)", input.MinPrice)
	}
	if input.MaxPrice < input.MinPrice {
		return fmt.Errorf("max-price (%d) cannot be below min-price (%d)", input.MaxPrice, input.MinPrice)
	}
	cfg.PriceRange = schema.PriceRange{Min: input.MinPrice, Max: input.MaxPrice}

	// --- Tier Categories ---
	for _, t := range ParseCSVList(input.Tiers) {
		var tc schema.TierCategory
		switch strings.ToLower(t) {
		case "budget":
			tc = schema.CategoryBudget
		case "standard":
			tc = schema.CategoryStandard
		case "premium":
			tc = schema.CategoryPremium
		default:
			return fmt.Errorf("invalid tier '%s'. must be budget, standard, premium", t)
		}
		cfg.TierCategories = append(cfg.TierCategories, tc)
	}

	cfg.Platforms = schema.NormalizeList(ParseCSVList(input.Platforms))

	// --- Follower Bucket ---
	if input.FollowerSize != "" {
		bucket := schema.FollowerBucket(strings.ToLower(input.FollowerSize))
		if _, ok := schema.ValidBuckets[bucket]; !ok {
			return fmt.Errorf("invalid follower-size '%s'. must be all, nano, micro, macro, mega", input.FollowerSize)
		}
		cfg.FollowerBucket = bucket
	}

	cfg.PostingFrequency = strings.TrimSpace(input.PostingFrequency)

	// --- Location Mode ---
	if input.LocationMode != "" {
		mode := schema.LocationMode(strings.ToLower(input.LocationMode))
		if _, ok := schema.ValidLocationModes[mode]; !ok {
			return fmt.Errorf("invalid location-mode '%s'. must be country, local, event", input.LocationMode)
		}
		cfg.LocationMode = mode
	}
	cfg.Countries = ParseCSVList(input.Countries)
	cfg.Cities = ParseCSVList(input.Cities)

	// --- Gender Ratio ---
	if input.GenderRatio != "" {
		gr, err := ParseGenderRatio(input.GenderRatio)
		if err != nil {
			return fmt.Errorf("invalid --gender-ratio: %w", err)
		}
		cfg.GenderRatio = gr
	}

	// --- Age Ranges ---
	if input.AudienceAge != "" {
		r, err := ParseAgeRange(input.AudienceAge)
		if err != nil {
			return fmt.Errorf("invalid --audience-age: %w", err)
		}
		cfg.AudienceAge = r
	}
	if input.InfluencerAge != "" {
		r, err := ParseAgeRange(input.InfluencerAge)
		if err != nil {
			return fmt.Errorf("invalid --influencer-age: %w", err)
		}
		cfg.InfluencerAge = r
	}

	cfg.Languages = ParseCSVList(input.Languages)
	cfg.AudienceGroups = ParseCSVList(input.AudienceGroups)
	cfg.Categories = ParseCSVList(input.Categories)
	cfg.SelectedIDs = ParseCSVList(input.Selected)

	return nil
}

// ParseCSVList splits a comma-separated flag value into trimmed parts,
// dropping empties.
func ParseCSVList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseGenderRatio parses a "male:female" percentage pair like "45:55".
// The two parts must be non-negative and sum to 100.
func ParseGenderRatio(s string) (*schema.GenderSplit, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 'male:female' format, got '%s'", s)
	}
	male, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid male percentage '%s': %w", parts[0], err)
	}
	female, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid female percentage '%s': %w", parts[1], err)
	}
	if male < 0 || female < 0 || male+female != 100 {
		return nil, fmt.Errorf("percentages must be non-negative and sum to 100, got %d:%d", male, female)
	}
	return &schema.GenderSplit{Male: male, Female: female}, nil
}

// ParseAgeRange parses an inclusive "min-max" range like "18-34".
func ParseAgeRange(s string) (*schema.AgeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 'min-max' format, got '%s'", s)
	}
	minAge, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid min age '%s': %w", parts[0], err)
	}
	maxAge, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid max age '%s': %w", parts[1], err)
	}
	if minAge < 0 || maxAge < minAge {
		return nil, fmt.Errorf("range must satisfy 0 <= min <= max, got %d-%d", minAge, maxAge)
	}
	return &schema.AgeRange{Min: minAge, Max: maxAge}, nil
}
