package pagecache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the pager calls them on
// hot paths.
type Hooks interface {
	// Cache lookup outcome for a derived page key.
	PageHit(key string)
	PageMiss(key string)

	// A cached entry was deleted on read because it could not be trusted.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(key, reason string)

	// A cache read or write failed (or timed out) and the request continued
	// against the primary store. op ∈ {"get", "set"}.
	CacheDegraded(key, op string, err error)

	// Invalidation finished a scan: how many keys matched and were deleted.
	Invalidated(pattern string, matched, deleted int)

	// Both scan and, possibly, delete failed during invalidation
	// (likely backend outage).
	InvalidateOutage(pattern string, scanErr, delErr error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) PageHit(string)                        {}
func (NopHooks) PageMiss(string)                       {}
func (NopHooks) SelfHeal(string, string)               {}
func (NopHooks) CacheDegraded(string, string, error)   {}
func (NopHooks) Invalidated(string, int, int)          {}
func (NopHooks) InvalidateOutage(string, error, error) {}
