// Package pagecache turns an ordered, filtered list query into a stable,
// resumable keyset-paginated sequence, and keeps a shared cache of those
// pages coherent across concurrent writers and caller scopes.
//
// Components:
//   - keyset: cursor classification, limit clamping, lookahead trimming
//     over a (createdAt desc, id desc) ordering.
//   - Provider: byte store with TTL and pattern scans (Redis, BigCache,
//     Ristretto).
//   - Codec[V]: (de)serializes pages <-> []byte.
//   - Invalidator: pattern-based eviction of every page touching an entity.
//
// Keys:
//
//	<collection>::<op>|u=<callerID>|r=<scopeTag>|<name>=<value>|...|limit=<n>|<cursor>
//
// The scope segment isolates caller visibility: two callers with different
// scopes can never share an entry. The filter markers double as
// invalidation targets: "<collection>::*|<name>=<id>|*" finds every page of
// an entity across all scopes, limits and cursors.
//
// Consistency: read-your-writes-eventually. Writes invalidate after the
// primary store commits; an in-flight read may still repopulate a stale
// page, which then lives at most one TTL. There is deliberately no
// generation fencing around that window.
package pagecache
