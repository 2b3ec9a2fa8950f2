package pagecache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/pagecache/codec"
	"github.com/unkn0wn-root/pagecache/keyset"
	pr "github.com/unkn0wn-root/pagecache/provider"
)

// Source supplies the two primary-store query shapes for one list
// operation. Both must return rows ordered (createdAt desc, id desc) and
// sized to fetchSize (the page limit plus one lookahead row); scoping of
// which rows are visible to the caller is the source's responsibility.
type Source[R keyset.Keyed] interface {
	// FetchFirst returns the head of the sequence.
	FetchFirst(ctx context.Context, fetchSize int) ([]R, error)

	// FetchAfter returns rows strictly after the cursor's ordering key.
	FetchAfter(ctx context.Context, cursor keyset.Cursor, fetchSize int) ([]R, error)
}

// Pager is the cached keyset-pagination front for one collection's list
// operations. R is the caller's row type.
type Pager[R keyset.Keyed] interface {
	Enabled() bool
	Close(context.Context) error

	// List resolves one page: derive key, consult the cache, and on miss
	// fetch through src, trim, and populate the cache. Cache trouble is
	// downgraded to a direct fetch; primary-store errors pass through
	// unchanged.
	List(ctx context.Context, req Request, src Source[R]) (keyset.Page[R], error)

	// Invalidate evicts every cached page of this collection that carries
	// the "|<markerName>=<entityID>|" marker, across all scopes, filters,
	// limits and cursors. Call it after the primary-store write commits,
	// never before. A zero-match result is not an error.
	Invalidate(ctx context.Context, markerName string, entityID int64) error
}

// Options tune the behavior of a Pager.
// Only Collection and Provider are required; others have sensible defaults.
type Options[R keyset.Keyed] struct {
	// Required
	Collection string // cache-key namespace, e.g. "taskPages"
	Provider   pr.Provider

	Codec        c.Codec[keyset.Page[R]] // nil => codec.JSON
	Logger       Logger                  // nil => NopLogger
	Hooks        Hooks                   // nil => NopHooks
	TTL          time.Duration           // page entries; 0 => 7d
	CacheTimeout time.Duration           // per cache op; 0 => 150ms. Keep it below the store timeout.
	ScanBatch    int64                   // invalidation scan batch; 0 => 500
	Disabled     bool                    // default false (enabled)
}

func New[R keyset.Keyed](opts Options[R]) (Pager[R], error) {
	return newPager[R](opts)
}
