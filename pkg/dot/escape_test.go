package dot

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestEscapePlainIdentity(t *testing.T) {
	for _, s := range []string{"", "hello", "node_1", "café", "1.5", "spaces are fine"} {
		if got := escape(s, ""); got != s {
			t.Errorf("escape(%q) = %q, want identity", s, got)
		}
	}
}

// Text with no quote, backslash, or newline must always come back
// unchanged when no extra characters are requested.
func TestEscapeIdentityProperty(t *testing.T) {
	f := func(s string) bool {
		if strings.ContainsAny(s, "\"\\\n") {
			return true
		}
		return escape(s, "") == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestEscapeSpecials(t *testing.T) {
	tests := []struct {
		in    string
		extra string
		want  string
	}{
		{`he said "hi"`, "", `he said \"hi\"`},
		{`a\b`, "", `a\\b`},
		{"line1\nline2", "", `line1\nline2`},
		{"a|b", "|", `a\|b`},
		{"a|b", "", "a|b"},
		{"<html>", "<>", `\<html\>`},
		{`\`, "", `\\`}, // trailing backslash pairs with the sentinel
	}
	for _, tt := range tests {
		if got := escape(tt.in, tt.extra); got != tt.want {
			t.Errorf("escape(%q, %q) = %q, want %q", tt.in, tt.extra, got, tt.want)
		}
	}
}

// Each of the nine DOT escape letters keeps its preceding backslash
// unescaped; any other letter gets the backslash doubled.
func TestEscapePassthroughLetters(t *testing.T) {
	for _, letter := range escapeLetters {
		in := `\` + string(letter)
		if got := escape(in, ""); got != in {
			t.Errorf("escape(%q) = %q, want passthrough", in, got)
		}
	}
	in := `\x`
	if got := escape(in, ""); got != `\\x` {
		t.Errorf("escape(%q) = %q, want %q", in, got, `\\x`)
	}
}

// Escaping is documented as non-idempotent: a second pass doubles
// backslashes introduced by the first.
func TestEscapeNotIdempotent(t *testing.T) {
	once := escape(`a"b`, "")
	twice := escape(once, "")
	if once != `a\"b` {
		t.Fatalf("first escape = %q", once)
	}
	if twice == once {
		t.Errorf("escape is unexpectedly idempotent on %q", once)
	}
	if twice != `a\\\"b` {
		t.Errorf("second escape = %q, want %q", twice, `a\\\"b`)
	}
}

func TestUnqtText(t *testing.T) {
	if got := Render(UnqtText("")); got != "" {
		t.Errorf("UnqtText(\"\") rendered %q, want empty", got)
	}
	if got := Render(UnqtText(`a"b`)); got != `a\"b` {
		t.Errorf("UnqtText rendered %q", got)
	}
}

func TestQtText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo", "foo"},
		{"42", "42"},
		{"graph", `"graph"`}, // keyword quoted even without special chars
		{"", `""`},
		{`he said "hi"`, `"he said \"hi\""`},
		{"two words", `"two words"`},
	}
	for _, tt := range tests {
		if got := Render(QtText(tt.in)); got != tt.want {
			t.Errorf("QtText(%q) rendered %q, want %q", tt.in, got, tt.want)
		}
	}
}
