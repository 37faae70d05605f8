package cache

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite" // database/sql driver
)

// SQLite is a Cache persisted to a local SQLite database, for callers that
// want cached results to survive process restarts without running a server.
type SQLite struct {
	db         *sql.DB
	defaultTTL time.Duration
}

// NewSQLite opens (and if needed creates) the cache database at path.
// A non-positive defaultTTL falls back to DefaultTTL.
func NewSQLite(path string, defaultTTL time.Duration) (*SQLite, error) {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrapf(err, "cache: open sqlite %s", path)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)`)
	if err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "cache: create sqlite schema")
	}

	return &SQLite{db: db, defaultTTL: defaultTTL}, nil
}

// Get implements Cache. Expired rows are deleted on read.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64

	row := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM cache_entries WHERE key = ?`, key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, eris.Wrapf(err, "cache: sqlite get %s", key)
	}

	if expiresAt > 0 && time.Now().Unix() > expiresAt {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
		return nil, ErrNotFound
	}

	return value, nil
}

// Set implements Cache.
func (s *SQLite) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	expiresAt := time.Now().Add(ttl).Unix()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	return eris.Wrapf(err, "cache: sqlite set %s", key)
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
