package ristretto

import (
	"context"
	"errors"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/pagecache/internal/wildcard"
	pr "github.com/unkn0wn-root/pagecache/provider"
)

// entry keeps the string key next to the payload: ristretto eviction
// callbacks only see hashed keys, so the registry can be maintained solely
// through the value.
type entry struct {
	key string
	val []byte
}

type Provider struct {
	c *rc.Cache

	// registry mirrors the live key set; ristretto itself cannot enumerate
	// keys, and Scan needs to.
	mu   sync.RWMutex
	keys map[string]struct{}
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	p := &Provider{keys: make(map[string]struct{})}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
		OnEvict: func(item *rc.Item) {
			if e, ok := item.Value.(entry); ok {
				p.mu.Lock()
				delete(p.keys, e.key)
				p.mu.Unlock()
			}
		},
	})
	if err != nil {
		return nil, err
	}
	p.c = c
	return p, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	e, ok := v.(entry)
	if !ok || e.val == nil {
		// self-heal: drop unexpected entry shape
		p.Del(context.Background(), key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok := p.c.SetWithTTL(key, entry{key: key, val: value}, int64(len(value)), ttl)
	if ok {
		p.mu.Lock()
		p.keys[key] = struct{}{}
		p.mu.Unlock()
	}
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	p.mu.Lock()
	delete(p.keys, key)
	p.mu.Unlock()
	return nil
}

// Scan matches against the registry snapshot and re-checks each candidate
// against the cache, pruning registry entries whose values already expired
// or were rejected at admission.
func (p *Provider) Scan(ctx context.Context, pattern string, _ int64) ([]string, error) {
	p.mu.RLock()
	candidates := make([]string, 0, len(p.keys))
	for k := range p.keys {
		if wildcard.Match(pattern, k) {
			candidates = append(candidates, k)
		}
	}
	p.mu.RUnlock()

	out := candidates[:0]
	for _, k := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := p.c.Get(k); ok {
			out = append(out, k)
		} else {
			p.mu.Lock()
			delete(p.keys, k)
			p.mu.Unlock()
		}
	}
	return out, nil
}

func (p *Provider) DelMany(ctx context.Context, keys ...string) (int64, error) {
	for _, k := range keys {
		_ = p.Del(ctx, k)
	}
	return int64(len(keys)), nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto metrics if enabled (not part of the Provider contract).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
