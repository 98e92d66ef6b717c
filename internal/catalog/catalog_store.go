package catalog

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/axees/scout/internal/contract"
	"github.com/axees/scout/schema"
)

// CatalogStoreImpl handles durable storage operations using various database backends.
type CatalogStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.CatalogStore = &CatalogStoreImpl{} // Compile-time check

// NewCatalogStore initializes and returns a new CatalogStore based on the backend type.
func NewCatalogStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.CatalogStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SqliteBackend:
		driverName = "sqlite3"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite catalog at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL catalog: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgresBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL catalog: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled catalog storage
		return &CatalogStoreImpl{
			db:         nil,
			tableName:  tableName,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported catalog backend: %s. Must be sqlite, mysql, postgres, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &CatalogStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				creator_id VARCHAR(255) PRIMARY KEY,
				payload BLOB NOT NULL,
				imported_at BIGINT NOT NULL,
				followers INT NOT NULL,
				engagement DOUBLE NOT NULL,
				tier VARCHAR(16) NOT NULL,
				estimated_cost INT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgresBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				creator_id TEXT PRIMARY KEY,
				payload BYTEA NOT NULL,
				imported_at BIGINT NOT NULL,
				followers INTEGER NOT NULL,
				engagement DOUBLE PRECISION NOT NULL,
				tier TEXT NOT NULL,
				estimated_cost INTEGER NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				creator_id TEXT PRIMARY KEY,
				payload BLOB NOT NULL,
				imported_at INTEGER NOT NULL,
				followers INTEGER NOT NULL,
				engagement REAL NOT NULL,
				tier TEXT NOT NULL,
				estimated_cost INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Put stores or replaces a creator record by ID.
func (ps *CatalogStoreImpl) Put(record schema.CreatorRecord) error {
	// Skip for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	// Use backend-specific UPSERT
	query := ps.getUpsertQuery()
	_, err := ps.db.Exec(query,
		record.ID,
		record.Payload,
		record.ImportedAt.Unix(),
		record.Followers,
		record.Engagement,
		record.Tier,
		record.EstimatedCost,
	)
	return err
}

// GetAll returns every stored creator record in import order.
func (ps *CatalogStoreImpl) GetAll() ([]schema.CreatorRecord, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, sql.ErrNoRows
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	query := fmt.Sprintf(`SELECT creator_id, payload, imported_at, followers, engagement, tier, estimated_cost
		FROM %s ORDER BY imported_at, creator_id`, quotedTableName)
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []schema.CreatorRecord
	for rows.Next() {
		var rec schema.CreatorRecord
		var importedAt int64
		if err := rows.Scan(&rec.ID, &rec.Payload, &importedAt, &rec.Followers, &rec.Engagement, &rec.Tier, &rec.EstimatedCost); err != nil {
			return nil, err
		}
		rec.ImportedAt = time.Unix(importedAt, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes all stored creator records.
func (ps *CatalogStoreImpl) Clear() error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	_, err := ps.db.Exec(fmt.Sprintf("DELETE FROM %s", quotedTableName))
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *CatalogStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (creator_id, payload, imported_at, followers, engagement, tier, estimated_cost) VALUES (?, ?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE payload = new.payload, imported_at = new.imported_at, followers = new.followers, engagement = new.engagement, tier = new.tier, estimated_cost = new.estimated_cost`, quotedTableName)

	case schema.PostgresBackend:
		return fmt.Sprintf(`INSERT INTO %s (creator_id, payload, imported_at, followers, engagement, tier, estimated_cost) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (creator_id) DO UPDATE SET payload = EXCLUDED.payload, imported_at = EXCLUDED.imported_at, followers = EXCLUDED.followers, engagement = EXCLUDED.engagement, tier = EXCLUDED.tier, estimated_cost = EXCLUDED.estimated_cost`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (creator_id, payload, imported_at, followers, engagement, tier, estimated_cost) VALUES (?, ?, ?, ?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ps *CatalogStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the catalog store.
func (ps *CatalogStoreImpl) GetStatus() (schema.CatalogStatus, error) {
	status := schema.CatalogStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)

	// Get total creators
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := ps.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalCreators); err != nil {
		return status, fmt.Errorf("failed to get total creators: %w", err)
	}

	if status.TotalCreators == 0 {
		return status, nil
	}

	// Get last entry time
	lastQuery := fmt.Sprintf("SELECT MAX(imported_at) FROM %s", quotedTableName)
	row = ps.db.QueryRow(lastQuery)
	var lastTs int64
	if err := row.Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last entry time: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)

	// Get oldest entry time
	oldestQuery := fmt.Sprintf("SELECT MIN(imported_at) FROM %s", quotedTableName)
	row = ps.db.QueryRow(oldestQuery)
	var oldestTs int64
	if err := row.Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest entry time: %w", err)
	}
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	// Estimate table size (approximate)
	// For SQLite, use page_count * page_size
	// For others, use database-specific size queries with a rough fallback
	switch ps.backend {
	case schema.SqliteBackend:
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		row = ps.db.QueryRow(sizeQuery)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}

	case schema.MySQLBackend:
		// Fallback rough estimate if information_schema query fails
		status.TableSizeBytes = int64(status.TotalCreators) * 1000

		cfg, err := mysql.ParseDSN(ps.connStr)
		if err != nil {
			break
		}
		dbName := cfg.DBName
		if dbName == "" {
			break
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		row := ps.db.QueryRow(sizeQuery, dbName, ps.tableName)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = int64(status.TotalCreators) * 1000
		}

	case schema.PostgresBackend:
		sizeQuery := "SELECT pg_total_relation_size($1)"
		row = ps.db.QueryRow(sizeQuery, ps.tableName)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = int64(status.TotalCreators) * 1000 // Fallback rough estimate
		}

	default:
		status.TableSizeBytes = int64(status.TotalCreators) * 1000 // Rough estimate
	}

	return status, nil
}

// validateTableName validates that the table name is a safe SQL identifier.
// It ensures the name consists only of alphanumeric characters and underscores,
// starting with a letter or underscore, to prevent SQL injection.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	matched, err := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_]*$`, name)
	if err != nil {
		return fmt.Errorf("error validating table name: %w", err)
	}
	if !matched {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.PostgresBackend:
		return fmt.Sprintf("\"%s\"", name)
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite
		return fmt.Sprintf("\"%s\"", name)
	}
}
