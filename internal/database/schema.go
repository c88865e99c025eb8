package database

import (
	"database/sql"
	"time"
)

const snapshotsSQL = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(snapshotsSQL)
	return err
}

// SaveSnapshot upserts the serialized payload under the given key.
// Last write wins.
func (db *DB) SaveSnapshot(key, payload string) error {
	_, err := db.Exec(
		`INSERT INTO cart_snapshots (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().UTC(),
	)
	return err
}

// LoadSnapshot reads the payload stored under key. A missing key is not an
// error; ok reports whether a record existed.
func (db *DB) LoadSnapshot(key string) (payload string, ok bool, err error) {
	err = db.QueryRow(`SELECT payload FROM cart_snapshots WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

// DeleteSnapshot removes the record under key if present.
func (db *DB) DeleteSnapshot(key string) error {
	_, err := db.Exec(`DELETE FROM cart_snapshots WHERE key = ?`, key)
	return err
}
