package dot

import (
	"testing"
	"testing/quick"
)

func TestNeedsQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"graph", true},
		{"GRAPH", true},
		{"Digraph", true},
		{"strict", true},
		{"subgraph", true},
		{"node", true},
		{"edge", true},
		{"graphs", false}, // keyword prefix only
		{"foo", false},
		{"_foo", false},
		{"foo_bar2", false},
		{"\x80abc", false}, // extended bytes are identifier characters
		{"a\xff", false},
		{"2fast", true}, // digit may not lead an identifier
		{"42", false},
		{"-42", false},
		{"4.2", false},
		{"-.5", false},
		{"4.", false},
		{"-", true},
		{".", true},
		{"4.2.1", true},
		{"1e10", true}, // exponent notation is not a bare literal
		{"he said hi", true},
		{`he said "hi"`, true},
		{"a-b", true},
		{"foo\n", true},
	}
	for _, tt := range tests {
		if got := needsQuotes(tt.in); got != tt.want {
			t.Errorf("needsQuotes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// needsQuotes must be exactly "empty, keyword, or neither ID- nor
// number-shaped", for arbitrary input.
func TestNeedsQuotesDefinition(t *testing.T) {
	f := func(s string) bool {
		want := s == "" || isKeyword(s) || (!isIDString(s) && !isNumString(s))
		return needsQuotes(s) == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIsNumString(t *testing.T) {
	valid := []string{"0", "007", "-1", "1.5", ".5", "-.5", "1.", "123.456"}
	for _, s := range valid {
		if !isNumString(s) {
			t.Errorf("isNumString(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-", ".", "-.", "1.2.3", "1e5", "+1", "0x10", " 1", "1 "}
	for _, s := range invalid {
		if isNumString(s) {
			t.Errorf("isNumString(%q) = true, want false", s)
		}
	}
}

func TestIsIDString(t *testing.T) {
	valid := []string{"a", "_", "A1", "node_2", "\x80", "caf\xc3\xa9"}
	for _, s := range valid {
		if !isIDString(s) {
			t.Errorf("isIDString(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "1a", "a b", "a-b", "a.b", `a"b`}
	for _, s := range invalid {
		if isIDString(s) {
			t.Errorf("isIDString(%q) = true, want false", s)
		}
	}
}
