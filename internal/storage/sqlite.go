// SQLite-backed adapter: every key/value pair lives in a single blobs table
// inside shoebox.db under DataDir.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blobs (
    key        TEXT PRIMARY KEY,
    value      BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteAdapter stores keys as rows in a blobs table.
type SQLiteAdapter struct {
	db *sql.DB
}

var _ Adapter = (*SQLiteAdapter)(nil)

// NewSQLiteAdapter opens (creating if necessary) DataDir/shoebox.db and
// ensures the blobs table exists.
func NewSQLiteAdapter(dataDir string) (*SQLiteAdapter, error) {
	if err := os.MkdirAll(dataDir, dataDirMode); err != nil {
		return nil, &types.PersistenceError{Op: "open", Key: dataDir, Err: err}
	}
	dbPath := filepath.Join(dataDir, "shoebox.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &types.PersistenceError{Op: "open", Key: dbPath, Err: err}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, &types.PersistenceError{Op: "open", Key: dbPath, Err: fmt.Errorf("ensure schema: %w", err)}
	}
	return &SQLiteAdapter{db: db}, nil
}

// Load reads the value stored for key. A missing row maps to ErrKeyAbsent.
func (a *SQLiteAdapter) Load(key string) ([]byte, error) {
	var value []byte
	err := a.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("load %q: %w", key, types.ErrKeyAbsent)
		}
		return nil, loadErr(key, err)
	}
	return value, nil
}

// Save upserts the value for key. Last writer wins.
func (a *SQLiteAdapter) Save(key string, value []byte) error {
	_, err := a.db.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return saveErr(key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key succeeds.
func (a *SQLiteAdapter) Remove(key string) error {
	if _, err := a.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		return removeErr(key, err)
	}
	return nil
}

// Close closes the underlying database.
func (a *SQLiteAdapter) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
