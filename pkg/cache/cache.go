// Package cache provides a byte-valued key/value store with TTL expiry and
// multiple backends: in-memory (default), Redis, and SQLite. Values are
// opaque payloads; callers marshal and unmarshal as needed.
package cache

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

// DefaultTTL is the entry lifetime used when a backend is constructed
// without an explicit default.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned by Get when a key is absent or expired.
var ErrNotFound = eris.New("cache: key not found")

// Cache is the interface satisfied by all backends. Thread-safety is each
// backend's own responsibility.
type Cache interface {
	// Get retrieves the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value at key. A non-positive ttl selects the backend's
	// default lifetime.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
