package pagecache

import (
	"strconv"
	"strings"
	"time"

	"github.com/unkn0wn-root/pagecache/keyset"
)

// Scope is the caller's resolved visibility over a collection. It is
// computed by the authorization layer and only consumed here: it becomes
// part of every derived key, so two callers with different visibility can
// never share a cache entry.
type Scope struct {
	// CallerID identifies the authenticated caller.
	CallerID int64
	// Tag names the visibility class, e.g. "ALL" for privileged roles or
	// "self:<id>" for callers restricted to their own rows.
	Tag string
}

// ScopeAll grants unrestricted visibility (privileged roles).
func ScopeAll(callerID int64) Scope { return Scope{CallerID: callerID, Tag: "ALL"} }

// ScopeSelf restricts visibility to rows owned by or assigned to the caller.
func ScopeSelf(callerID int64) Scope {
	return Scope{CallerID: callerID, Tag: "self:" + strconv.FormatInt(callerID, 10)}
}

func (s Scope) resolved() bool { return s.CallerID != 0 && s.Tag != "" }

// Filter is one named query parameter embedded into the derived key as a
// "|name=value|" marker. Markers double as invalidation targets: a pattern
// over "|name=value|" finds every page of that entity across all scopes,
// limits and cursors.
type Filter struct {
	Name  string
	Value string
}

// FilterID builds a Filter over an integer entity id.
func FilterID(name string, id int64) Filter {
	return Filter{Name: name, Value: strconv.FormatInt(id, 10)}
}

// Request is one list call: which operation, for whom, filtered how, and
// where in the page sequence.
type Request struct {
	// Op names the list operation, e.g. "tasksByProject".
	Op string
	// Scope is the caller's resolved visibility. Zero scope fails the
	// request with ErrScopeUnresolved before any I/O.
	Scope Scope
	// Filters are embedded into the key in the order given. Order matters
	// for key determinism; callers must pass a fixed order per operation.
	Filters []Filter
	// Limit is the raw requested page size; it is clamped to
	// [1, keyset.MaxLimit] with keyset.DefaultLimit as fallback.
	Limit int
	// CursorCreatedAt/CursorID resume after the given ordering key. Both
	// nil means first page; setting only one is an invalid cursor.
	CursorCreatedAt *time.Time
	CursorID        *int64
}

const firstPageFragment = "first"

// DeriveKey builds the cache key for a request, byte-identical for
// identical inputs across calls and processes:
//
//	<collection>::<op>|u=<callerID>|r=<tag>|<name>=<value>|...|limit=<n>|<cursorFragment>
//
// where the cursor fragment is "first" or "createdAt=<rfc3339>|id=<id>".
// Fails with ErrScopeUnresolved on a zero scope and ErrInvalidCursor on a
// half-set cursor, both before any cache or store access.
func DeriveKey(collection string, req Request) (string, error) {
	if !req.Scope.resolved() {
		return "", ErrScopeUnresolved
	}
	mode, cursor, err := keyset.Classify(req.CursorCreatedAt, req.CursorID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(collection)
	b.WriteString("::")
	b.WriteString(req.Op)
	b.WriteString("|u=")
	b.WriteString(strconv.FormatInt(req.Scope.CallerID, 10))
	b.WriteString("|r=")
	b.WriteString(req.Scope.Tag)
	for _, f := range req.Filters {
		b.WriteByte('|')
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	b.WriteString("|limit=")
	b.WriteString(strconv.Itoa(keyset.NormalizeLimit(req.Limit)))
	b.WriteByte('|')
	if mode == keyset.ModeFirst {
		b.WriteString(firstPageFragment)
	} else {
		b.WriteString("createdAt=")
		b.WriteString(cursor.CreatedAt.UTC().Format(time.RFC3339Nano))
		b.WriteString("|id=")
		b.WriteString(strconv.FormatInt(cursor.ID, 10))
	}
	return b.String(), nil
}

// InvalidationPattern builds the wildcard that matches every key DeriveKey
// produces for the given entity within a collection, across all scopes,
// filters, limits and cursors.
func InvalidationPattern(collection, markerName string, entityID int64) string {
	return collection + "::*|" + markerName + "=" + strconv.FormatInt(entityID, 10) + "|*"
}
