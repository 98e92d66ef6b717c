package catalog

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/axees/scout/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// openMigrateDB opens a plain database/sql handle for the given backend.
// Callers own the returned handle.
func openMigrateDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SqliteBackend:
		if connStr == "" {
			connStr = GetDBFilePath()
		}
		return sql.Open("sqlite3", connStr)
	case schema.MySQLBackend:
		return sql.Open("mysql", connStr)
	case schema.PostgresBackend:
		return sql.Open("pgx", connStr)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// newMigrateDriver wraps an open handle in the migrate driver for its backend.
func newMigrateDriver(backend schema.DatabaseBackend, db *sql.DB) (database.Driver, error) {
	switch backend {
	case schema.SqliteBackend:
		return sqlite3.WithInstance(db, &sqlite3.Config{})
	case schema.MySQLBackend:
		return mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgresBackend:
		return postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// MigrateCatalog moves the catalog schema to targetVersion. Negative means
// latest, zero rolls every migration back, positive pins an exact version.
func MigrateCatalog(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("the none backend has no schema to migrate")
	}

	db, err := openMigrateDB(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := newMigrateDriver(backend, db)
	if err != nil {
		return fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "scout", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to read current schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("catalog schema is dirty at version %d; repair or force a version before migrating", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		if err == migrate.ErrNoChange {
			fmt.Printf("Catalog schema already at the latest version (%d).\n", currentVersion)
		} else {
			newVersion, _, _ := m.Version()
			fmt.Printf("Catalog schema migrated: version %d -> %d.\n", currentVersion, newVersion)
		}
	case targetVersion == 0:
		err = m.Down()
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("Catalog schema already empty; nothing to roll back.")
		} else {
			fmt.Printf("Catalog schema rolled back: version %d -> 0.\n", currentVersion)
		}
	default:
		err = m.Migrate(uint(targetVersion))
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		if err == migrate.ErrNoChange {
			fmt.Printf("Catalog schema already at version %d.\n", targetVersion)
		} else {
			fmt.Printf("Catalog schema migrated: version %d -> %d.\n", currentVersion, targetVersion)
		}
	}

	return nil
}
