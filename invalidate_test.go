package pagecache

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// recordingHooks captures invalidation callbacks.
type recordingHooks struct {
	NopHooks
	invalidated [][3]any
	outages     int
}

func (h *recordingHooks) Invalidated(pattern string, matched, deleted int) {
	h.invalidated = append(h.invalidated, [3]any{pattern, matched, deleted})
}

func (h *recordingHooks) InvalidateOutage(string, error, error) { h.outages++ }

func TestStandaloneInvalidator(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	hooks := &recordingHooks{}

	inv, err := NewInvalidator(InvalidatorOptions{Provider: mp, Hooks: hooks})
	if err != nil {
		t.Fatalf("NewInvalidator: %v", err)
	}

	// seed keys the deriver would have produced
	keys := []string{
		"commentPages::commentsByTask|u=1|r=ALL|taskId=5|limit=10|first",
		"commentPages::commentsByTask|u=2|r=self:2|taskId=5|limit=10|first",
		"commentPages::commentsByTask|u=1|r=ALL|taskId=6|limit=10|first",
	}
	for _, k := range keys {
		if _, err := mp.Set(ctx, k, []byte("x"), 0); err != nil {
			t.Fatalf("seed %q: %v", k, err)
		}
	}

	if err := inv.Invalidate(ctx, "commentPages", "taskId", 5); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if mp.len() != 1 {
		t.Fatalf("entries after invalidate = %d, want 1", mp.len())
	}
	if _, ok, _ := mp.Get(ctx, keys[2]); !ok {
		t.Fatal("unrelated task's page was evicted")
	}

	if len(hooks.invalidated) != 1 {
		t.Fatalf("hook calls = %d, want 1", len(hooks.invalidated))
	}
	if got := hooks.invalidated[0]; got[1] != 2 || got[2] != 2 {
		t.Fatalf("hook reported matched=%v deleted=%v, want 2/2", got[1], got[2])
	}
}

func TestInvalidatorDeleteFailure(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	if _, err := mp.Set(ctx, "taskPages::op|u=1|r=ALL|projId=7|limit=10|first", []byte("x"), 0); err != nil {
		t.Fatalf("seed: %v", err)
	}
	mp.delErr = errors.New("redis: READONLY")

	hooks := &recordingHooks{}
	inv, err := NewInvalidator(InvalidatorOptions{Provider: mp, Hooks: hooks})
	if err != nil {
		t.Fatalf("NewInvalidator: %v", err)
	}

	err = inv.Invalidate(ctx, "taskPages", "projId", 7)
	if !errors.Is(err, ErrCacheUnavailable) {
		t.Fatalf("err = %v, want ErrCacheUnavailable", err)
	}
	var ie *InvalidateError
	if !errors.As(err, &ie) || ie.DelErr == nil {
		t.Fatalf("err = %#v, want *InvalidateError with DelErr", err)
	}
	if hooks.outages != 1 {
		t.Fatalf("outage hooks = %d, want 1", hooks.outages)
	}
}

func TestInvalidatorRequiresProvider(t *testing.T) {
	if _, err := NewInvalidator(InvalidatorOptions{}); err == nil {
		t.Fatal("NewInvalidator without provider must fail")
	}
}

func TestInvalidateErrorMessage(t *testing.T) {
	scanErr := errors.New("scan boom")
	delErr := errors.New("del boom")

	tests := []struct {
		err  *InvalidateError
		want []string
	}{
		{&InvalidateError{Pattern: "p", ScanErr: scanErr}, []string{"scan failed", "scan boom"}},
		{&InvalidateError{Pattern: "p", DelErr: delErr}, []string{"delete failed", "del boom"}},
		{&InvalidateError{Pattern: "p", ScanErr: scanErr, DelErr: delErr}, []string{"scan and delete failed"}},
		{&InvalidateError{Pattern: "p"}, []string{"unknown error"}},
	}
	for _, tt := range tests {
		msg := tt.err.Error()
		for _, w := range tt.want {
			if !strings.Contains(msg, w) {
				t.Errorf("message %q missing %q", msg, w)
			}
		}
		if len(tt.err.Unwrap()) == 0 && (tt.err.ScanErr != nil || tt.err.DelErr != nil) {
			t.Errorf("Unwrap dropped wrapped errors for %q", msg)
		}
	}
}
