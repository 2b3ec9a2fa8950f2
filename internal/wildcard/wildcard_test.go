package wildcard

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, s string
		want       bool
	}{
		{"", "", true},
		{"*", "", true},
		{"*", "anything", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "abcd", false},
		{"a*c", "ac", true},
		{"a*c", "abbbc", true},
		{"a*c", "abbbd", false},
		{"**a**", "a", true},

		// the shapes the invalidation path actually emits
		{
			"taskPages::*|projId=7|*",
			"taskPages::tasksByProject|u=1|r=ALL|projId=7|limit=10|first",
			true,
		},
		{
			"taskPages::*|projId=7|*",
			"taskPages::tasksByProject|u=1|r=ALL|projId=77|limit=10|first",
			false,
		},
		{
			"taskPages::*|projId=7|*",
			"commentPages::commentsByTask|u=1|r=ALL|projId=7|limit=10|first",
			false,
		},
		{
			"commentPages::*|taskId=5|*",
			"commentPages::commentsByTask|u=2|r=self:2|taskId=5|limit=2|createdAt=2024-05-01T12:00:03Z|id=3",
			true,
		},
	}
	for _, tt := range tests {
		if got := Match(tt.pattern, tt.s); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.s, got, tt.want)
		}
	}
}
