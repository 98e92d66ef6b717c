// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/axees/scout/schema"
)

// CreatorSource defines where raw creator records come from. This allows
// the discovery logic to be tested without a catalog database or fixture
// files on disk.
type CreatorSource interface {
	// Load returns all raw creator records from the source.
	Load(ctx context.Context) ([]schema.RawCreator, error)
}

// CatalogManager defines the interface for managing catalog stores.
// This allows the catalog layer to be mocked for testing.
type CatalogManager interface {
	GetCatalogStore() CatalogStore
}

// CatalogStore defines the interface for creator catalog storage.
type CatalogStore interface {
	// Put stores or replaces a creator record by ID.
	Put(record schema.CreatorRecord) error

	// GetAll returns every stored creator record in import order.
	GetAll() ([]schema.CreatorRecord, error)

	// Clear removes all stored creator records.
	Clear() error

	// GetStatus returns status information about the catalog store.
	GetStatus() (schema.CatalogStatus, error)

	// Close closes the underlying connection.
	Close() error
}
