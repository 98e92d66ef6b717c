// Package catalog stores imported creator records durably.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// creatorsTable is the name of the table for catalog storage.
const creatorsTable = "scout_creators"

// Global Manager instance for main logic.
var (
	Manager   = &CatalogStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// CatalogStoreManager manages the CatalogStore instance.
type CatalogStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.CatalogStore
}

var _ contract.CatalogManager = &CatalogStoreManager{} // Compile-time check

// GetCatalogStore returns the catalog store.
func (mgr *CatalogStoreManager) GetCatalogStore() contract.CatalogStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// GetDBFilePath returns the path to the SQLite DB file for catalog storage.
func GetDBFilePath() string {
	return contract.GetCatalogDBFilePath()
}

// InitCatalog initializes the global catalog manager.
// backend can be empty or none to disable catalog storage.
func InitCatalog(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var store contract.CatalogStore
		if backend != "" {
			var err error
			store, err = NewCatalogStore(creatorsTable, backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize catalog storage: %w", err)
				return
			}
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.store = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseCatalog should be called on application shutdown.
func CloseCatalog() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearCatalog clears the catalog for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCatalog(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SqliteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, creatorsTable)

	case schema.PostgresBackend:
		return clearSQLTable("pgx", connStr, creatorsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported catalog backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
