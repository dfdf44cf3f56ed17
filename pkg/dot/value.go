package dot

// Value is the serialization contract every renderable attribute value
// implements: Unqt produces the minimal, unquoted representation,
// suitable for composing into larger fragments.
type Value interface {
	Unqt() Code
}

// Finaler is implemented by values whose complete field-value form
// differs from the unquoted one - text that may need surrounding quotes,
// doubles whose shortest rendering uses exponent notation. Types without
// special final-form rules implement only [Value].
type Finaler interface {
	Value
	Final() Code
}

// Final returns the complete field-value form of v, falling back to the
// unquoted form for types with no special final rules.
func Final(v Value) Code {
	if f, ok := v.(Finaler); ok {
		return f.Final()
	}
	return v.Unqt()
}

// UnqtList renders values in the generic bracketed list notation.
// Types with bespoke list forms (see [DoubleList], [ColorList]) define
// their own slice type instead.
func UnqtList[T Value](vs []T) Code {
	cs := make([]Code, len(vs))
	for i, v := range vs {
		cs[i] = v.Unqt()
	}
	return Seq(Text("["), Join(Text(","), cs), Text("]"))
}

// FinalList renders a list as a complete field value: the bracketed
// unquoted list wrapped in quotes.
func FinalList[T Value](vs []T) Code {
	return Quoted(UnqtList(vs))
}

// Field prints a DOT attribute assignment: name, equals sign, and the
// final form of the value.
func Field(name string, v Value) Code {
	return Seq(Text(name), Text("="), Final(v))
}

// Str is plain text. Its unquoted form is the escaped text; its final
// form adds quotes whenever the original text is not a bare identifier
// or numeric literal, or is a reserved keyword.
type Str string

// Unqt implements [Value].
func (s Str) Unqt() Code { return UnqtText(string(s)) }

// Final implements [Finaler].
func (s Str) Final() Code { return QtText(string(s)) }

// ID is a pre-formatted token emitted verbatim, with no escaping or
// quoting. Callers own its validity.
type ID string

// Unqt implements [Value].
func (i ID) Unqt() Code { return Text(string(i)) }

// Bool renders as the unquoted literals true and false.
type Bool bool

// Unqt implements [Value].
func (b Bool) Unqt() Code {
	if b {
		return Text("true")
	}
	return Text("false")
}

// HTML is an angle-bracketed structured string. Its content is opaque
// to the engine and passes through with no escaping; Graphviz parses it
// as an HTML-like label.
type HTML string

// Unqt implements [Value].
func (h HTML) Unqt() Code {
	return Seq(Text("<"), Text(string(h)), Text(">"))
}
