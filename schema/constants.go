package schema

// Tier is the follower-derived creator size class.
type Tier string

// TierCategory is the cost-derived pricing class.
type TierCategory string

// FollowerBucket is a coarse follower-count filter value.
type FollowerBucket string

// LocationMode selects which location predicate applies.
type LocationMode string

// OutputMode controls where results are displayed.
type OutputMode string

// DatabaseBackend controls where catalog entries are stored.
type DatabaseBackend string

// BreakdownKey is a pricing component in a cost breakdown.
type BreakdownKey string

// Creator size classes by total follower count.
const (
	TierNano  Tier = "Nano"  // < 10k followers
	TierMicro Tier = "Micro" // 10k - 100k followers
	TierMacro Tier = "Macro" // 100k - 1M followers
	TierMega  Tier = "Mega"  // >= 1M followers
)

// Pricing classes by estimated cost.
const (
	CategoryBudget   TierCategory = "Budget"   // < $1,000
	CategoryStandard TierCategory = "Standard" // $1,000 - $4,999
	CategoryPremium  TierCategory = "Premium"  // >= $5,000
)

// Follower bucket filter values.
const (
	BucketAll   FollowerBucket = "all"
	BucketNano  FollowerBucket = "nano"
	BucketMicro FollowerBucket = "micro"
	BucketMacro FollowerBucket = "macro"
	BucketMega  FollowerBucket = "mega"
)

// Location filter modes.
const (
	LocationCountry LocationMode = "country"
	LocationLocal   LocationMode = "local"
	LocationEvent   LocationMode = "event"
)

// Output modes for displaying results.
const (
	TableMode   OutputMode = "table"
	CSVMode     OutputMode = "csv"
	JSONMode    OutputMode = "json"
	ParquetMode OutputMode = "parquet"
)

// Database backends for the creator catalog.
const (
	NoneBackend     DatabaseBackend = "none"
	SqliteBackend   DatabaseBackend = "sqlite"
	MySQLBackend    DatabaseBackend = "mysql"
	PostgresBackend DatabaseBackend = "postgres"
)

// Pricing breakdown components.
const (
	BreakdownRate       BreakdownKey = "rate"
	BreakdownBase       BreakdownKey = "base"
	BreakdownMultiplier BreakdownKey = "multiplier"
	BreakdownFloor      BreakdownKey = "floor"
)

// Follower thresholds for tier assignment and rate selection.
const (
	ThresholdMega  = 1_000_000
	ThresholdMacro = 100_000
	ThresholdMicro = 10_000
)

// Per-follower rates by size class.
const (
	RateMega  = 0.008
	RateMacro = 0.012
	RateMicro = 0.015
	RateNano  = 0.025
)

// Engagement multiplier floor and cost floors.
const (
	MultiplierFloor = 0.6
	FloorNano       = 250 // Minimum cost below the micro threshold
	FloorDefault    = 500 // Minimum cost at or above the micro threshold
)

// Cost thresholds for tier categories.
const (
	ThresholdPremium  = 5_000
	ThresholdStandard = 1_000
)

// ValidBuckets has all valid follower bucket filter values.
var ValidBuckets = map[FollowerBucket]bool{
	BucketAll:   true,
	BucketNano:  true,
	BucketMicro: true,
	BucketMacro: true,
	BucketMega:  true,
}

// ValidTierCategories has all valid pricing classes.
var ValidTierCategories = map[TierCategory]bool{
	CategoryBudget:   true,
	CategoryStandard: true,
	CategoryPremium:  true,
}

// ValidLocationModes has all valid location filter modes.
var ValidLocationModes = map[LocationMode]bool{
	LocationCountry: true,
	LocationLocal:   true,
	LocationEvent:   true,
}

// ValidOutputModes has all valid output modes.
var ValidOutputModes = map[OutputMode]bool{
	TableMode:   true,
	CSVMode:     true,
	JSONMode:    true,
	ParquetMode: true,
}

// ValidDatabaseBackends has all valid catalog backends.
var ValidDatabaseBackends = map[DatabaseBackend]bool{
	NoneBackend:     true,
	SqliteBackend:   true,
	MySQLBackend:    true,
	PostgresBackend: true,
}

// Normalization defaults applied when a raw record omits a field.
const (
	DefaultLanguage         = "English"
	DefaultAge              = 28
	DefaultPostingFrequency = "Weekly"
	DefaultCountry          = "USA"
	DefaultCity             = "Los Angeles"
	DefaultCategory         = "Creator"
	DefaultGenderMale       = 45
	DefaultGenderFemale     = 55
	DefaultAudienceAgeMin   = 18
	DefaultAudienceAgeMax   = 34
)

// Filter and storage defaults.
const (
	DefaultMaxPrice     = 1_000_000
	DefaultCatalogDB    = ".scout.db"
	DefaultLocationMode = LocationCountry
)
