// Package keyset implements cursor classification and page trimming for
// keyset pagination over a (createdAt desc, id desc) ordering.
//
// A cursor is the ordering key of the last row of the previous page. Rows are
// fetched one past the requested limit; the extra row only signals that more
// pages exist and is trimmed before the page is returned.
package keyset

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCursor reports a cursor with exactly one of its two fields
	// set, or a cursor supplied where none is allowed.
	ErrInvalidCursor = errors.New("keyset: invalid cursor")
)

const (
	// DefaultLimit applies when the caller passes no limit (or a non-positive one).
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 50
)

// Mode tells the fetcher which query shape to run.
type Mode int

const (
	ModeFirst Mode = iota // no cursor; start of the sequence
	ModeNext              // resume strictly after the cursor's ordering key
)

func (m Mode) String() string {
	switch m {
	case ModeFirst:
		return "first"
	case ModeNext:
		return "next"
	default:
		return "unknown"
	}
}

// Cursor is the composite ordering key (createdAt, id) of a row. The id is
// the tie-breaker; createdAt alone is not unique.
type Cursor struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        int64     `json:"id"`
}

// Classify maps the raw optional cursor fields onto a Mode.
// Both fields nil => ModeFirst. Both set => ModeNext plus the assembled
// cursor. A half-set cursor is rejected with ErrInvalidCursor.
func Classify(createdAt *time.Time, id *int64) (Mode, Cursor, error) {
	switch {
	case createdAt == nil && id == nil:
		return ModeFirst, Cursor{}, nil
	case createdAt != nil && id != nil:
		return ModeNext, Cursor{CreatedAt: *createdAt, ID: *id}, nil
	default:
		return 0, Cursor{}, ErrInvalidCursor
	}
}

// NormalizeLimit clamps limit to [1, MaxLimit]; non-positive values fall
// back to DefaultLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// FetchSize is how many rows the data source must be asked for: one past
// the page so HasMore can be decided without a count query.
func FetchSize(limit int) int { return limit + 1 }

// Keyed is implemented by any row type that exposes its ordering key.
type Keyed interface {
	PageKey() Cursor
}

// Page is one trimmed page of results. Next is non-nil iff HasMore.
type Page[R any] struct {
	Items   []R     `json:"items"`
	HasMore bool    `json:"hasMore"`
	Next    *Cursor `json:"next,omitempty"`
}

// Trim converts an over-fetched row slice (up to limit+1 rows, ordering
// preserved) into a Page. An empty input is a valid terminal page, not an
// error.
func Trim[R Keyed](rows []R, limit int) Page[R] {
	hasMore := len(rows) > limit
	items := rows
	if hasMore {
		items = rows[:limit]
	}

	p := Page[R]{Items: items, HasMore: hasMore}
	if hasMore && len(items) > 0 {
		last := items[len(items)-1].PageKey()
		p.Next = &last
	}
	return p
}
