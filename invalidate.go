package pagecache

import (
	"context"
	"fmt"

	pr "github.com/unkn0wn-root/pagecache/provider"
)

// Invalidator evicts cached pages by key pattern. Individual page keys are
// never tracked; the marker embedded by DeriveKey makes them findable with
// one bounded scan over the provider's key space.
//
// Pager.Invalidate covers the common case; construct an Invalidator
// directly when a write path has the provider but no pager (e.g. a worker
// that only mutates entities).
type Invalidator struct {
	provider pr.Provider
	log      Logger
	hooks    Hooks
	batch    int64
}

// InvalidatorOptions configure a standalone Invalidator.
// Only Provider is required.
type InvalidatorOptions struct {
	Provider  pr.Provider
	Logger    Logger // nil => NopLogger
	Hooks     Hooks  // nil => NopHooks
	ScanBatch int64  // keys visited per scan round-trip; 0 => 500
}

func NewInvalidator(opts InvalidatorOptions) (*Invalidator, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("pagecache: provider is required")
	}
	return &Invalidator{
		provider: opts.Provider,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
		batch:    coalesce[int64](opts.ScanBatch, defaultScanBatch),
	}, nil
}

// Invalidate removes every cached page of collection whose key carries the
// "|<markerName>=<entityID>|" marker. The scan runs in bounded batches and
// matches are deleted in one bulk call.
//
// Errors wrap ErrCacheUnavailable: the write that triggered the
// invalidation has already committed, so callers log and move on — reads
// stay stale at most until the entry TTL.
func (inv *Invalidator) Invalidate(ctx context.Context, collection, markerName string, entityID int64) error {
	pattern := InvalidationPattern(collection, markerName, entityID)

	keys, err := inv.provider.Scan(ctx, pattern, inv.batch)
	if err != nil {
		inv.hooks.InvalidateOutage(pattern, err, nil)
		inv.log.Error("invalidation scan failed", Fields{"pattern": pattern, "err": err})
		return &InvalidateError{Pattern: pattern, ScanErr: err}
	}
	if len(keys) == 0 {
		// the entity may simply never have been paged
		inv.log.Info("invalidation matched no keys", Fields{"pattern": pattern, "matched": 0, "deleted": 0})
		inv.hooks.Invalidated(pattern, 0, 0)
		return nil
	}

	deleted, err := inv.provider.DelMany(ctx, keys...)
	if err != nil {
		inv.hooks.InvalidateOutage(pattern, nil, err)
		inv.log.Error("invalidation delete failed", Fields{"pattern": pattern, "matched": len(keys), "err": err})
		return &InvalidateError{Pattern: pattern, DelErr: err}
	}

	inv.log.Info("invalidated cached pages", Fields{"pattern": pattern, "matched": len(keys), "deleted": deleted})
	inv.hooks.Invalidated(pattern, len(keys), int(deleted))
	return nil
}
