package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the device storage handle. It stands in for the browser localStorage
// of the original client: an embedded SQLite file with one row per storage key.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the device storage file and prepares the schema.
// Use ":memory:" for an ephemeral session.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open device storage: %w", err)
	}

	// Single-session storage; one connection avoids SQLITE_BUSY surprises.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping device storage: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare device storage schema: %w", err)
	}

	return &DB{db}, nil
}

// HealthCheck performs a simple health check on the storage file.
func (db *DB) HealthCheck() error {
	return db.Ping()
}
