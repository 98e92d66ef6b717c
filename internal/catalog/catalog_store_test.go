package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// newSQLiteStore creates a store backed by a temp-dir SQLite file.
func newSQLiteStore(t *testing.T) contract.CatalogStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "store.db")
	store, err := NewCatalogStore("test_creators", schema.SqliteBackend, dbPath)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecord(id string, followers int32, importedAt time.Time) schema.CreatorRecord {
	return schema.CreatorRecord{
		ID:            id,
		Payload:       []byte(`{"id":"` + id + `"}`),
		ImportedAt:    importedAt,
		Followers:     followers,
		Engagement:    4.2,
		Tier:          "Micro",
		EstimatedCost: 500,
	}
}

func TestSQLiteStoreCRUD(t *testing.T) {
	store := newSQLiteStore(t)
	base := time.Unix(1_700_000_000, 0)

	// Empty store
	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll on empty store failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Expected 0 records, got %d", len(records))
	}

	// Insert two records with distinct import times
	if err := store.Put(testRecord("c-2", 50_000, base.Add(time.Hour))); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(testRecord("c-1", 20_000, base)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Records come back in import order, not insert order
	records, err = store.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "c-1" || records[1].ID != "c-2" {
		t.Fatalf("Wrong order: got %s, %s", records[0].ID, records[1].ID)
	}
	if records[0].Followers != 20_000 {
		t.Fatalf("Wrong followers: got %d", records[0].Followers)
	}
	if !records[0].ImportedAt.Equal(base) {
		t.Fatalf("Wrong import time: got %v", records[0].ImportedAt)
	}

	// Upsert replaces by ID
	updated := testRecord("c-1", 99_000, base.Add(2*time.Hour))
	if err := store.Put(updated); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	records, err = store.GetAll()
	if err != nil {
		t.Fatalf("GetAll after upsert failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Upsert should not add a row, got %d records", len(records))
	}
	for _, rec := range records {
		if rec.ID == "c-1" && rec.Followers != 99_000 {
			t.Fatalf("Upsert did not replace row: followers=%d", rec.Followers)
		}
	}

	// Clear removes everything
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	records, err = store.GetAll()
	if err != nil {
		t.Fatalf("GetAll after clear failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Expected empty store after clear, got %d records", len(records))
	}
}

func TestSQLiteStoreStatus(t *testing.T) {
	store := newSQLiteStore(t)
	base := time.Unix(1_700_000_000, 0)

	status, err := store.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus on empty store failed: %v", err)
	}
	if !status.Connected {
		t.Fatal("Expected connected status")
	}
	if status.Backend != string(schema.SqliteBackend) {
		t.Fatalf("Wrong backend: %s", status.Backend)
	}
	if status.TotalCreators != 0 {
		t.Fatalf("Expected 0 creators, got %d", status.TotalCreators)
	}

	if err := store.Put(testRecord("c-1", 1000, base)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(testRecord("c-2", 2000, base.Add(time.Hour))); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	status, err = store.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status.TotalCreators != 2 {
		t.Fatalf("Expected 2 creators, got %d", status.TotalCreators)
	}
	if !status.OldestEntryTime.Equal(base) {
		t.Fatalf("Wrong oldest entry: %v", status.OldestEntryTime)
	}
	if !status.LastEntryTime.Equal(base.Add(time.Hour)) {
		t.Fatalf("Wrong last entry: %v", status.LastEntryTime)
	}
	if status.TableSizeBytes <= 0 {
		t.Fatalf("Expected positive table size, got %d", status.TableSizeBytes)
	}
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewCatalogStore("test_creators", schema.NoneBackend, "")
	if err != nil {
		t.Fatalf("Failed to create none backend store: %v", err)
	}

	// Put is a no-op
	if err := store.Put(testRecord("c-1", 1000, time.Now())); err != nil {
		t.Fatalf("Put should not error on none backend: %v", err)
	}

	// GetAll reports no rows
	if _, err := store.GetAll(); err == nil {
		t.Fatal("Expected error from GetAll on none backend")
	}

	// Status reports disconnected
	status, err := store.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status.Connected {
		t.Fatal("None backend should not report connected")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestNewCatalogStoreValidation(t *testing.T) {
	if _, err := NewCatalogStore("", schema.SqliteBackend, ""); err == nil {
		t.Fatal("Expected error for empty table name")
	}
	if _, err := NewCatalogStore("bad-name;drop", schema.SqliteBackend, ""); err == nil {
		t.Fatal("Expected error for invalid table name")
	}
	if _, err := NewCatalogStore("ok_table", "oracle", ""); err == nil {
		t.Fatal("Expected error for unsupported backend")
	}
}

func TestValidateTableName(t *testing.T) {
	valid := []string{"creators", "_tmp", "scout_creators_2"}
	for _, name := range valid {
		if err := validateTableName(name); err != nil {
			t.Errorf("Expected %q to be valid: %v", name, err)
		}
	}

	invalid := []string{"", "1creators", "bad-name", "name;drop table", "with space"}
	for _, name := range invalid {
		if err := validateTableName(name); err == nil {
			t.Errorf("Expected %q to be invalid", name)
		}
	}
}
