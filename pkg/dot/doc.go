// Package dot renders attribute values and identifiers into the Graphviz
// DOT language.
//
// # Overview
//
// DOT has a deceptively strict token grammar: a value is emitted either as
// a bare identifier, a numeric literal, a double-quoted string, or an
// angle-bracketed HTML-like string, and choosing the wrong form produces
// files that Graphviz rejects or silently misreads. This package owns that
// decision: the lexical classification of raw text, the escaping rules
// (including the nine backslash sequences DOT itself interprets, which
// must pass through untouched), the quoting decision, and the numeric
// formatting conventions.
//
// # Rendering model
//
// Values build [Code], a deferred computation that produces a document
// fragment when evaluated against a [Context]. Fragments compose with
// [Seq], [Group], [Nest], and [Line]; [Render] evaluates the composition
// with a fresh context and lays the result out with a width-aware pretty
// printer. Layout is cosmetic only - wrapping never changes the meaning
// of the output.
//
// # The Value contract
//
// Every renderable type implements [Value] (the minimal unquoted form).
// Types whose complete field-value form differs - text needing quotes,
// doubles whose shortest form uses exponent notation - additionally
// implement [Finaler]. [Final] dispatches between the two. Slice types
// such as [DoubleList] and [ColorList] override the default bracketed
// list notation with DOT's colon-joined form.
//
// # Render context
//
// A single piece of state is threaded through each render: the active
// color scheme. Rendering a [Scheme] value records it; a later
// [SchemeColor] consults it to decide between the abbreviated slot form
// and the fully qualified /scheme/slot form. The context is created
// fresh per [Render] call and never shared across renders.
//
// # Concurrency
//
// A single render is strictly sequential. Concurrent renders are safe
// because each owns its context; a single Code value must not be
// evaluated from two goroutines at once.
package dot
