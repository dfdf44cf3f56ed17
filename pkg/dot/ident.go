package dot

import "strings"

// keywords are the DOT reserved words. They are identifier-shaped but must
// always be quoted when used as a value; matching is case-insensitive.
var keywords = map[string]struct{}{
	"node":     {},
	"edge":     {},
	"graph":    {},
	"digraph":  {},
	"subgraph": {},
	"strict":   {},
}

// isKeyword reports whether s is a DOT reserved word, ignoring case.
func isKeyword(s string) bool {
	_, ok := keywords[strings.ToLower(s)]
	return ok
}

// isIDString reports whether s can appear unquoted as a DOT identifier:
// first byte alphabetic, underscore, or >= 0x80; remaining bytes the same
// plus digits. The check is byte-oriented because DOT admits any byte
// above 0x7f inside identifiers regardless of encoding.
func isIDString(s string) bool {
	if s == "" {
		return false
	}
	if !isIDHead(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIDTail(s[i]) {
			return false
		}
	}
	return true
}

func isIDHead(b byte) bool {
	return b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIDTail(b byte) bool {
	return isIDHead(b) || (b >= '0' && b <= '9')
}

// isNumString reports whether s is a legal bare DOT numeric literal:
// an optional leading minus, decimal digits with at most one decimal
// point, and at least one digit somewhere. Exponent notation is not a
// legal bare literal.
func isNumString(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	digits := 0
	dots := 0
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// needsQuotes reports whether the original, unescaped text s requires
// surrounding quotes in DOT output. Empty strings and keywords are always
// quoted; identifier-shaped and number-shaped text never is.
func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	if isKeyword(s) {
		return true
	}
	return !isIDString(s) && !isNumString(s)
}
