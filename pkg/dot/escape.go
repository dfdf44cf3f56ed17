package dot

import "strings"

// escapeLetters are the characters that form meaningful two-byte escape
// sequences in DOT (\N, \G, \E, \T, \H, \L, \n, \l, \r). A backslash
// directly before one of these is already an escape and must not be
// doubled.
const escapeLetters = "NGETHLnlr"

// escape backslash-escapes s for inclusion in a quoted DOT string.
// Quote and backslash are always escape candidates; extra lists further
// characters the caller needs escaped for its syntactic position.
// Literal newlines become the two-character sequence \n.
//
// escape is total and deterministic but deliberately not idempotent:
// running it twice doubles backslashes that are not part of a
// passthrough sequence.
func escape(s, extra string) string {
	var b strings.Builder
	b.Grow(len(s))

	// Sentinel space so the final character still has a successor to
	// pair with.
	r := []rune(s + " ")
	for i := 0; i < len(r)-1; i++ {
		c, next := r[i], r[i+1]
		switch {
		case c == '\\' && strings.ContainsRune(escapeLetters, next):
			b.WriteRune(c)
		case c == '"' || c == '\\' || strings.ContainsRune(extra, c):
			b.WriteByte('\\')
			b.WriteRune(c)
		case c == '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// addQuotes wraps c in double quotes iff the original, pre-escape text
// orig requires them. The quoting decision is made on orig, never on the
// escaped form, so escaping must not influence classification.
func addQuotes(orig string, c Code) Code {
	if needsQuotes(orig) {
		return Quoted(c)
	}
	return c
}

// UnqtText renders s escaped but without surrounding quotes, for
// composing into a larger fragment. Empty input produces empty output.
func UnqtText(s string) Code {
	if s == "" {
		return Empty()
	}
	return Text(escape(s, ""))
}

// QtText renders s escaped and quoted when the quoting rules demand it.
// This is the complete field-value form for text.
func QtText(s string) Code {
	return addQuotes(s, Text(escape(s, "")))
}
