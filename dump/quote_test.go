package dump

import "testing"

func TestQuoteString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "a\nb", `a\0ab`},
		{"tab", "\t", `\09`},
		{"unit separator", "\x1f", `\1f`},
		{"nul", "\x00", `\00`},
		{"space untouched", " ", " "},
		{"del untouched", "\x7f", "\x7f"},
		{"utf8 bytes untouched", "héllo", "héllo"},
		{"mixed", "\"\n\\", `\"\0a\\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteString(tt.in); got != tt.want {
				t.Errorf("QuoteString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
