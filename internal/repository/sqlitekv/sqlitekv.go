// Package sqlitekv provides the local durable key-value blob store backing the
// data store in standalone deployments.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Adapter persists collection blobs to a single SQLite table.
type Adapter struct {
	db     *sql.DB
	logger *zap.Logger
}

// New opens (creating if needed) the SQLite database at path and prepares the
// blob table.
func New(path string, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = "floricoop.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		blob BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &Adapter{db: db, logger: logger}, nil
}

// Read returns the blob stored under key. Any failure reads as "absent".
func (a *Adapter) Read(ctx context.Context, key string) ([]byte, bool) {
	var blob []byte
	err := a.db.QueryRowContext(ctx, `SELECT blob FROM collections WHERE key = ?`, key).Scan(&blob)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			a.logger.Warn("sqlite read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return blob, true
}

// Write stores the blob under key, replacing any previous value.
func (a *Adapter) Write(ctx context.Context, key string, blob []byte) error {
	_, err := a.db.ExecContext(ctx, `INSERT INTO collections (key, blob, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite write %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}
