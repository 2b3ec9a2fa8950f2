// Package provider defines the storage abstraction used by pagecache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no metadata,
// no re-encoding, no mutation). If a store performs internal transforms
// (e.g., compression), they MUST be fully reversed so that the bytes returned
// by Get are identical to the bytes provided to Set.
//
// Beyond the usual get/set/del, a provider must be able to enumerate its key
// space against a glob pattern ('*' wildcards only). Pattern scans back the
// invalidation path: page keys are never indexed individually, so evicting
// an entity's pages means finding every key that carries its marker.
package provider

import (
	"context"
	"time"
)

// Provider is a byte store with TTLs and pattern scans.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. A non-positive TTL means no
	// expiry. Returns ok=false when the store rejected the write under
	// pressure.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Scan returns every key matching pattern, where '*' matches any
	// substring. batch bounds how many keys are visited per round-trip so
	// a large key space never blocks the store; batch <= 0 picks an
	// implementation default.
	Scan(ctx context.Context, pattern string, batch int64) ([]string, error)

	// DelMany deletes the given keys and returns how many were removed.
	// Missing keys are not an error.
	DelMany(ctx context.Context, keys ...string) (int64, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
