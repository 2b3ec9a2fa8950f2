package keyset

import (
	"testing"
	"time"
)

type row struct {
	ID        int64
	CreatedAt time.Time
}

func (r row) PageKey() Cursor { return Cursor{CreatedAt: r.CreatedAt, ID: r.ID} }

func ts(sec int) time.Time { return time.Date(2024, 5, 1, 12, 0, sec, 0, time.UTC) }

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(v int64) *int64        { return &v }

func TestClassify(t *testing.T) {
	at := ts(10)
	id := int64(7)

	tests := []struct {
		name      string
		createdAt *time.Time
		id        *int64
		wantMode  Mode
		wantErr   bool
	}{
		{name: "both absent => first", wantMode: ModeFirst},
		{name: "both present => next", createdAt: ptrTime(at), id: ptrInt64(id), wantMode: ModeNext},
		{name: "only createdAt => invalid", createdAt: ptrTime(at), wantErr: true},
		{name: "only id => invalid", id: ptrInt64(id), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, cur, err := Classify(tt.createdAt, tt.id)
			if tt.wantErr {
				if err != ErrInvalidCursor {
					t.Fatalf("expected ErrInvalidCursor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if mode != tt.wantMode {
				t.Fatalf("mode = %v, want %v", mode, tt.wantMode)
			}
			if mode == ModeNext && (cur.ID != id || !cur.CreatedAt.Equal(at)) {
				t.Fatalf("cursor = %+v, want (%v, %d)", cur, at, id)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, DefaultLimit},
		{0, DefaultLimit},
		{1, 1},
		{10, 10},
		{50, 50},
		{51, MaxLimit},
		{1000, MaxLimit},
	}
	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFetchSize(t *testing.T) {
	if got := FetchSize(10); got != 11 {
		t.Fatalf("FetchSize(10) = %d, want 11", got)
	}
}

// TestTrimScenario follows the canonical two-page walk: limit 2 over four
// rows t4>t3>t2>t1 with ids 4,3,2,1.
func TestTrimScenario(t *testing.T) {
	rows := []row{
		{ID: 4, CreatedAt: ts(4)},
		{ID: 3, CreatedAt: ts(3)},
		{ID: 2, CreatedAt: ts(2)},
		{ID: 1, CreatedAt: ts(1)},
	}

	// First page sees an over-fetch of limit+1 = 3 rows.
	p1 := Trim(rows[:3], 2)
	if len(p1.Items) != 2 || p1.Items[0].ID != 4 || p1.Items[1].ID != 3 {
		t.Fatalf("page1 items = %+v", p1.Items)
	}
	if !p1.HasMore {
		t.Fatal("page1 HasMore = false, want true")
	}
	if p1.Next == nil || p1.Next.ID != 3 || !p1.Next.CreatedAt.Equal(ts(3)) {
		t.Fatalf("page1 Next = %+v, want (t3, 3)", p1.Next)
	}

	// Second page: only two rows remain, no lookahead row comes back.
	p2 := Trim(rows[2:], 2)
	if len(p2.Items) != 2 || p2.Items[0].ID != 2 || p2.Items[1].ID != 1 {
		t.Fatalf("page2 items = %+v", p2.Items)
	}
	if p2.HasMore || p2.Next != nil {
		t.Fatalf("page2 hasMore=%v next=%+v, want terminal page", p2.HasMore, p2.Next)
	}
}

func TestTrimEmpty(t *testing.T) {
	p := Trim([]row{}, 10)
	if len(p.Items) != 0 || p.HasMore || p.Next != nil {
		t.Fatalf("empty trim = %+v, want empty terminal page", p)
	}
}

// Exactly limit rows returned (no lookahead row): terminal page, no cursor.
func TestTrimExactLimit(t *testing.T) {
	rows := []row{{ID: 2, CreatedAt: ts(2)}, {ID: 1, CreatedAt: ts(1)}}
	p := Trim(rows, 2)
	if len(p.Items) != 2 || p.HasMore || p.Next != nil {
		t.Fatalf("exact-limit trim = %+v", p)
	}
}

// Next cursor comes from the last returned item, not the lookahead row —
// ids tie-break rows sharing a createdAt.
func TestTrimTieBreak(t *testing.T) {
	same := ts(5)
	rows := []row{
		{ID: 9, CreatedAt: same},
		{ID: 8, CreatedAt: same},
		{ID: 7, CreatedAt: same},
	}
	p := Trim(rows, 2)
	if !p.HasMore || p.Next == nil {
		t.Fatalf("trim = %+v, want hasMore with cursor", p)
	}
	if p.Next.ID != 8 || !p.Next.CreatedAt.Equal(same) {
		t.Fatalf("Next = %+v, want (t5, 8)", p.Next)
	}
}
