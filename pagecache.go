package pagecache

import (
	"context"
	"fmt"
	"time"

	c "github.com/unkn0wn-root/pagecache/codec"
	"github.com/unkn0wn-root/pagecache/internal/wire"
	"github.com/unkn0wn-root/pagecache/keyset"
	pr "github.com/unkn0wn-root/pagecache/provider"
)

const (
	defaultTTL          = 7 * 24 * time.Hour
	defaultCacheTimeout = 150 * time.Millisecond
	defaultScanBatch    = 500
)

type pager[R keyset.Keyed] struct {
	collection string
	provider   pr.Provider
	codec      c.Codec[keyset.Page[R]]
	log        Logger
	hooks      Hooks
	inv        *Invalidator

	enabled      bool
	ttl          time.Duration
	cacheTimeout time.Duration
}

func newPager[R keyset.Keyed](opts Options[R]) (*pager[R], error) {
	if opts.Collection == "" {
		return nil, fmt.Errorf("pagecache: collection is required")
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("pagecache: provider is required")
	}

	p := &pager[R]{
		collection: opts.Collection,
		provider:   opts.Provider,
		enabled:    !opts.Disabled,
	}

	// defaults
	if opts.Codec != nil {
		p.codec = opts.Codec
	} else {
		p.codec = c.JSON[keyset.Page[R]]{}
	}
	p.log = coalesce[Logger](opts.Logger, NopLogger{})
	p.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	p.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)
	p.cacheTimeout = coalesce[time.Duration](opts.CacheTimeout, defaultCacheTimeout)

	inv, err := NewInvalidator(InvalidatorOptions{
		Provider:  opts.Provider,
		Logger:    p.log,
		Hooks:     p.hooks,
		ScanBatch: opts.ScanBatch,
	})
	if err != nil {
		return nil, err
	}
	p.inv = inv
	return p, nil
}

func (p *pager[R]) Enabled() bool { return p.enabled }

func (p *pager[R]) Close(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Close(ctx)
	}
	return nil
}

// List resolves one page. Validation (scope, cursor shape) fails before any
// I/O; cache trouble degrades to a direct store fetch; store errors pass
// through unchanged.
func (p *pager[R]) List(ctx context.Context, req Request, src Source[R]) (keyset.Page[R], error) {
	var zero keyset.Page[R]

	key, err := DeriveKey(p.collection, req)
	if err != nil {
		return zero, err
	}
	// DeriveKey already rejected half-set cursors; Classify here only
	// recovers the mode and the assembled cursor.
	mode, cursor, err := keyset.Classify(req.CursorCreatedAt, req.CursorID)
	if err != nil {
		return zero, err
	}
	limit := keyset.NormalizeLimit(req.Limit)

	if p.enabled {
		if page, ok := p.cacheGet(ctx, key); ok {
			p.hooks.PageHit(key)
			return page, nil
		}
		p.hooks.PageMiss(key)
	}

	var rows []R
	switch mode {
	case keyset.ModeNext:
		rows, err = src.FetchAfter(ctx, cursor, keyset.FetchSize(limit))
	default:
		rows, err = src.FetchFirst(ctx, keyset.FetchSize(limit))
	}
	if err != nil {
		return zero, err
	}

	page := keyset.Trim(rows, limit)
	if p.enabled {
		// best-effort; an empty page is a valid cacheable value
		p.cachePut(ctx, key, page)
	}
	return page, nil
}

func (p *pager[R]) Invalidate(ctx context.Context, markerName string, entityID int64) error {
	if !p.enabled {
		return nil
	}
	return p.inv.Invalidate(ctx, p.collection, markerName, entityID)
}

func (p *pager[R]) cacheGet(ctx context.Context, key string) (keyset.Page[R], bool) {
	var zero keyset.Page[R]
	cctx, cancel := context.WithTimeout(ctx, p.cacheTimeout)
	defer cancel()

	raw, ok, err := p.provider.Get(cctx, key)
	if err != nil {
		// degraded cache must never be slower or stricter than the store path
		p.hooks.CacheDegraded(key, "get", err)
		p.log.Warn("cache get failed; treating as miss", Fields{"key": key, "err": err})
		return zero, false
	}
	if !ok {
		return zero, false
	}
	payload, err := wire.DecodePage(raw)
	if err != nil {
		_ = p.provider.Del(cctx, key) // self-heal corrupt
		p.hooks.SelfHeal(key, "corrupt")
		return zero, false
	}
	page, err := p.codec.Decode(payload)
	if err != nil {
		_ = p.provider.Del(cctx, key) // self-heal
		p.hooks.SelfHeal(key, "value_decode")
		return zero, false
	}
	return page, true
}

func (p *pager[R]) cachePut(ctx context.Context, key string, page keyset.Page[R]) {
	payload, err := p.codec.Encode(page)
	if err != nil {
		p.log.Error("page encode failed; result not cached", Fields{"key": key, "err": err})
		return
	}
	cctx, cancel := context.WithTimeout(ctx, p.cacheTimeout)
	defer cancel()

	ok, err := p.provider.Set(cctx, key, wire.EncodePage(payload), p.ttl)
	if err != nil {
		p.hooks.CacheDegraded(key, "set", err)
		p.log.Warn("cache set failed; page served uncached", Fields{"key": key, "err": err})
		return
	}
	if !ok {
		p.log.Debug("cache set rejected by provider (pressure)", Fields{"key": key})
	}
}
