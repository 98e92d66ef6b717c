package catalog

import (
	"context"
	"testing"
)

func TestImportCreators(t *testing.T) {
	store := newSQLiteStore(t)
	path := writeTempJSON(t, bareJSON)

	count, err := ImportCreators(context.Background(), store, path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 imported, got %d", count)
	}

	records, err := store.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Derived columns are computed at import time
	var found bool
	for _, rec := range records {
		if rec.ID != "c-1" {
			continue
		}
		found = true
		if rec.Followers != 50_000 {
			t.Fatalf("Wrong followers: %d", rec.Followers)
		}
		if rec.Engagement != 4.2 {
			t.Fatalf("Wrong engagement: %g", rec.Engagement)
		}
		if rec.Tier != "Micro" {
			t.Fatalf("Wrong tier: %s", rec.Tier)
		}
		// 50000 * 0.015 * 0.6 = 450, clamped to the 500 floor
		if rec.EstimatedCost != 500 {
			t.Fatalf("Wrong cost: %d", rec.EstimatedCost)
		}
	}
	if !found {
		t.Fatal("c-1 not found in catalog")
	}

	// Re-import replaces rather than duplicates
	count, err = ImportCreators(context.Background(), store, path)
	if err != nil {
		t.Fatalf("Re-import failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 imported, got %d", count)
	}
	records, err = store.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Re-import duplicated rows: got %d", len(records))
	}
}

func TestImportCreatorsErrors(t *testing.T) {
	store := newSQLiteStore(t)

	t.Run("nil store", func(t *testing.T) {
		if _, err := ImportCreators(context.Background(), nil, "creators.json"); err == nil {
			t.Fatal("Expected error for nil store")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ImportCreators(context.Background(), store, "does-not-exist.json"); err == nil {
			t.Fatal("Expected error for missing file")
		}
	})

	t.Run("creator without id", func(t *testing.T) {
		path := writeTempJSON(t, `[{"name": "Anonymous"}]`)
		if _, err := ImportCreators(context.Background(), store, path); err == nil {
			t.Fatal("Expected error for creator without id")
		}
	})
}
