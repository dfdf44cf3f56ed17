package dot

// Code is a deferred rendering computation: evaluated against a
// [Context] it produces a document fragment, possibly updating the
// context as a side effect. Code values compose with [Seq] and the
// layout combinators; nothing is written until [Render].
type Code func(*Context) Doc

// Empty returns a Code producing no output.
func Empty() Code {
	return func(*Context) Doc { return text("") }
}

// Text returns a Code emitting s verbatim. No escaping is applied; use
// [UnqtText] or [QtText] for untrusted text.
func Text(s string) Code {
	return func(*Context) Doc { return text(s) }
}

// Seq concatenates fragments in order. Evaluation order is left to
// right, which fixes the order of context side effects.
func Seq(cs ...Code) Code {
	return func(ctx *Context) Doc {
		ds := make([]Doc, len(cs))
		for i, c := range cs {
			ds[i] = c(ctx)
		}
		return concat(ds...)
	}
}

// Group marks a fragment that the layout may render on a single line
// when it fits.
func Group(c Code) Code {
	return func(ctx *Context) Doc { return group(c(ctx)) }
}

// Nest increases the indentation of any line breaks inside c by ind.
func Nest(ind int, c Code) Code {
	return func(ctx *Context) Doc { return nest(ind, c(ctx)) }
}

// Line is a soft break: a space when its group is flattened, a newline
// otherwise.
func Line() Code {
	return func(*Context) Doc { return line() }
}

// HardLine is an unconditional newline.
func HardLine() Code {
	return func(*Context) Doc { return hardline() }
}

// Quoted surrounds a fragment with double quote marks. The fragment is
// expected to already be escaped.
func Quoted(c Code) Code {
	return func(ctx *Context) Doc { return dquotes(c(ctx)) }
}

// Join interleaves sep between the given fragments.
func Join(sep Code, cs []Code) Code {
	return func(ctx *Context) Doc {
		ds := make([]Doc, 0, 2*len(cs))
		for i, c := range cs {
			if i > 0 {
				ds = append(ds, sep(ctx))
			}
			ds = append(ds, c(ctx))
		}
		return concat(ds...)
	}
}

// Render evaluates c against a fresh Context and lays the resulting
// document out at the package's target width. The context is discarded
// afterwards; successive calls never observe each other's state.
// Output is byte-identical across calls for the same composition.
func Render(c Code) string {
	ctx := &Context{}
	return layout(c(ctx), pageWidth, ribbonFrac)
}
