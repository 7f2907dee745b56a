package text

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ascii space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"carriage return", '\r', true},
		{"no-break space", '\u00a0', true},
		{"em space", '\u2003', true},
		{"narrow no-break space", '\u202f', true},
		{"line separator", '\u2028', true},
		{"paragraph separator", '\u2029', true},
		{"ideographic space", '\u3000', true},
		{"letter", 'a', false},
		{"digit", '7', false},
		{"hyphen", '-', false},
		{"zero width space", '\u200b', true},
		{"zero width no-break space", '\ufeff', true},
		{"zero width joiner", '\u200d', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.r); got != tt.want {
				t.Errorf("IsBlank(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsOnlyWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" ", true},
		{" \u00a0\t", true},
		{"\n", true},
		{" a ", false},
		{"Tika", false},
		{"\u200b\ufeff", true},
		{"a\u200b", false},
	}

	for _, tt := range tests {
		if got := IsOnlyWhitespace(tt.in); got != tt.want {
			t.Errorf("IsOnlyWhitespace(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsLineBreak(t *testing.T) {
	for _, r := range []rune{'\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029'} {
		if !IsLineBreak(r) {
			t.Errorf("IsLineBreak(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{' ', '\t', '\u00a0', '\u200b', 'a'} {
		if IsLineBreak(r) {
			t.Errorf("IsLineBreak(%U) = true, want false", r)
		}
	}

	if !HasLineBreak("a\r\nb") {
		t.Error("Expected a line break in \"a\\r\\nb\"")
	}
	if HasLineBreak("a b") {
		t.Error("Expected no line break in \"a b\"")
	}
}
