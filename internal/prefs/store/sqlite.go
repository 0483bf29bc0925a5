package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite stores preferences in a local database file.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	createPreferences := `
	CREATE TABLE IF NOT EXISTS preferences (
		visitor_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (visitor_id, key)
	)`
	if _, err := db.ExecContext(ctx, createPreferences); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func (s *SQLite) Get(ctx context.Context, visitor, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitor, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, visitor, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, visitor, key, value, s.now().Unix())
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}

// Prune deletes preferences not touched since before the cutoff and
// reports how many rows went.
func (s *SQLite) Prune(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE updated_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune preferences: %w", err)
	}
	return result.RowsAffected()
}

func (s *SQLite) Close() error { return s.db.Close() }
