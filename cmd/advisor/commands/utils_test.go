// ABOUTME: Tests for shared CLI display helpers
// ABOUTME: Covers truncation boundaries including multibyte input

package commands

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than max", "short", 10, "short"},
		{"exactly max", "exact", 5, "exact"},
		{"truncated", "a longer string", 10, "a longe..."},
		{"tiny max", "abcdef", 3, "abc"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
