package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SetGet(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestSQLite_Miss(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.Get(context.Background(), "absent")
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSQLite_Overwrite(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.Set(ctx, "k", []byte("one"), 0))
	require.NoError(t, s.Set(ctx, "k", []byte("two"), 0))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestSQLite_Expiry(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Second))

	// Force the stored deadline into the past instead of sleeping.
	_, err := s.db.Exec(`UPDATE cache_entries SET expires_at = ? WHERE key = ?`,
		time.Now().Add(-time.Minute).Unix(), "k")
	require.NoError(t, err)

	_, err = s.Get(ctx, "k")
	assert.True(t, eris.Is(err, ErrNotFound))
}
