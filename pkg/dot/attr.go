package dot

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value Value
}

// Code renders the attribute as name=value with the value in its final
// form.
func (a Attr) Code() Code { return Field(a.Name, a.Value) }

// Attrs is an ordered attribute list, rendered in DOT's bracketed
// statement form. Order is preserved as given; an empty list renders
// nothing.
type Attrs []Attr

// Code renders the bracketed attribute list, or nothing when empty.
func (as Attrs) Code() Code {
	if len(as) == 0 {
		return Empty()
	}
	cs := make([]Code, len(as))
	for i, a := range as {
		cs[i] = a.Code()
	}
	return Group(Seq(Text("["), Join(Seq(Text(","), Line()), cs), Text("]")))
}

// Friendly constructors for the commonly used attributes. This is a
// deliberate subset of the Graphviz catalog; anything not covered can
// be built directly with [Attr] and a [Value].

func Label(s string) Attr       { return Attr{"label", Str(s)} }
func HTMLLabel(h string) Attr   { return Attr{"label", HTML(h)} }
func XLabel(s string) Attr      { return Attr{"xlabel", Str(s)} }
func FontName(s string) Attr    { return Attr{"fontname", Str(s)} }
func FontSize(pt float64) Attr  { return Attr{"fontsize", Double(pt)} }
func FontColor(c Color) Attr    { return Attr{"fontcolor", c} }
func ColorAttr(c Color) Attr    { return Attr{"color", c} }
func Colors(cs ...Color) Attr   { return Attr{"color", ColorList(cs)} }
func FillColor(c Color) Attr    { return Attr{"fillcolor", c} }
func BGColor(c Color) Attr      { return Attr{"bgcolor", c} }
func ColorScheme(s Scheme) Attr { return Attr{"colorscheme", s} }
func Shape(s string) Attr       { return Attr{"shape", Str(s)} }
func Style(s string) Attr       { return Attr{"style", Str(s)} }
func RankDir(s string) Attr     { return Attr{"rankdir", Str(s)} }
func Rank(s string) Attr        { return Attr{"rank", Str(s)} }
func RankSep(d float64) Attr    { return Attr{"ranksep", Double(d)} }
func NodeSep(d float64) Attr    { return Attr{"nodesep", Double(d)} }
func Width(d float64) Attr      { return Attr{"width", Double(d)} }
func Height(d float64) Attr     { return Attr{"height", Double(d)} }
func Margin(ds ...float64) Attr { return Attr{"margin", doubles(ds)} }
func PenWidth(d float64) Attr   { return Attr{"penwidth", Double(d)} }
func ArrowHead(s string) Attr   { return Attr{"arrowhead", Str(s)} }
func ArrowTail(s string) Attr   { return Attr{"arrowtail", Str(s)} }
func ArrowSize(d float64) Attr  { return Attr{"arrowsize", Double(d)} }
func Dir(s string) Attr         { return Attr{"dir", Str(s)} }
func Weight(d float64) Attr     { return Attr{"weight", Double(d)} }
func Constraint(b bool) Attr    { return Attr{"constraint", Bool(b)} }
func Peripheries(n int) Attr    { return Attr{"peripheries", Int(n)} }
func URL(s string) Attr         { return Attr{"URL", Str(s)} }
func Tooltip(s string) Attr     { return Attr{"tooltip", Str(s)} }
func Comment(s string) Attr     { return Attr{"comment", Str(s)} }
func Ordering(s string) Attr    { return Attr{"ordering", Str(s)} }
func NodeGroup(s string) Attr   { return Attr{"group", Str(s)} }

func doubles(ds []float64) Value {
	l := make(DoubleList, len(ds))
	for i, d := range ds {
		l[i] = Double(d)
	}
	return l
}
