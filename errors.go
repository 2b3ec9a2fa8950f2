package pagecache

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/pagecache/keyset"
)

var (
	// ErrInvalidCursor re-exports the keyset sentinel so callers only need
	// this package for error matching.
	ErrInvalidCursor = keyset.ErrInvalidCursor

	// ErrScopeUnresolved means no caller scope was supplied. Raised before
	// any cache or store access; maps to an authorization failure upstream.
	ErrScopeUnresolved = errors.New("pagecache: caller scope unresolved")

	// ErrCacheUnavailable wraps cache scan/delete failures during
	// invalidation. The originating write has already committed; callers
	// must treat this as "temporarily stale reads", not a failed write.
	ErrCacheUnavailable = errors.New("pagecache: cache unavailable")
)

// InvalidateError carries the pattern and phase of a failed invalidation.
// It matches ErrCacheUnavailable via errors.Is.
type InvalidateError struct {
	Pattern string
	ScanErr error
	DelErr  error
}

func (e *InvalidateError) Error() string {
	switch {
	case e.ScanErr != nil && e.DelErr != nil:
		return fmt.Sprintf("invalidate %q failed: scan and delete failed: scan=%v; delete=%v",
			e.Pattern, e.ScanErr, e.DelErr)
	case e.ScanErr != nil:
		return fmt.Sprintf("invalidate %q: scan failed: %v", e.Pattern, e.ScanErr)
	case e.DelErr != nil:
		return fmt.Sprintf("invalidate %q: delete failed: %v", e.Pattern, e.DelErr)
	default:
		return fmt.Sprintf("invalidate %q: unknown error", e.Pattern)
	}
}

func (e *InvalidateError) Is(target error) bool { return target == ErrCacheUnavailable }

func (e *InvalidateError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.ScanErr != nil {
		errs = append(errs, e.ScanErr)
	}
	if e.DelErr != nil {
		errs = append(errs, e.DelErr)
	}
	return errs
}
