package sanitization

import "testing"

func TestMultilineHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hi", "Hi"},
		{"line one\nline two", "line one<br/>line two"},
		{"windows\r\nbreak", "windows<br/>break"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"a & b\n\"quoted\"", "a &amp; b<br/>&#34;quoted&#34;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MultilineHTML(tt.input); got != tt.want {
				t.Errorf("MultilineHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(`<b>Ann</b>`); got != "&lt;b&gt;Ann&lt;/b&gt;" {
		t.Errorf("EscapeHTML = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"héllo wörld", 7, "héllo w"},
		{"日本語テキスト", 3, "日本語"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.limit); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
		}
	}
}
