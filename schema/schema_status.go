package schema

import "time"

// CatalogStatus represents the status of the creator catalog store.
type CatalogStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalCreators   int       `json:"total_creators"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// CreatorRecord represents a row from the scout_creators table.
type CreatorRecord struct {
	ID            string
	Payload       []byte // Raw creator JSON as imported
	ImportedAt    time.Time
	Followers     int32
	Engagement    float64
	Tier          string
	EstimatedCost int32
}
