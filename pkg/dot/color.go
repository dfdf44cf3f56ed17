package dot

import (
	"fmt"
	"strconv"
)

// Color is any value usable where DOT expects a color: an X11 name, an
// RGB(A) triplet, an HSV triplet, or a palette slot relative to a named
// color scheme.
type Color interface {
	Value
	colorValue()
}

// X11Color is a named color from the default X11 palette, e.g. "red".
type X11Color string

func (X11Color) colorValue() {}

// Unqt implements [Value].
func (c X11Color) Unqt() Code { return UnqtText(string(c)) }

// Final implements [Finaler].
func (c X11Color) Final() Code { return QtText(string(c)) }

// RGB is a color given as a hex triplet, rendered as #rrggbb.
type RGB struct {
	R, G, B uint8
}

func (RGB) colorValue() {}

func (c RGB) text() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Unqt implements [Value].
func (c RGB) Unqt() Code { return UnqtText(c.text()) }

// Final implements [Finaler]. The leading # always forces quotes.
func (c RGB) Final() Code { return QtText(c.text()) }

// RGBA is an RGB color with an alpha channel, rendered as #rrggbbaa.
type RGBA struct {
	R, G, B, A uint8
}

func (RGBA) colorValue() {}

func (c RGBA) text() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Unqt implements [Value].
func (c RGBA) Unqt() Code { return UnqtText(c.text()) }

// Final implements [Finaler].
func (c RGBA) Final() Code { return QtText(c.text()) }

// HSV is a color in hue/saturation/value space, each component in
// [0, 1], rendered comma-separated.
type HSV struct {
	H, S, V float64
}

func (HSV) colorValue() {}

func (c HSV) text() string {
	return formatDouble(c.H) + "," + formatDouble(c.S) + "," + formatDouble(c.V)
}

// Unqt implements [Value].
func (c HSV) Unqt() Code { return UnqtText(c.text()) }

// Final implements [Finaler]. Commas force quotes.
func (c HSV) Final() Code { return QtText(c.text()) }

// Scheme is a colorscheme attribute value, e.g. "accent8" for one of
// the Brewer palettes. Rendering a Scheme has a side effect: it records
// itself as the active scheme in the render context, so that later
// [SchemeColor] values in the same render can abbreviate. Callers must
// therefore render the scheme declaration before any value relying on
// it; rendered afterwards it affects nothing already emitted.
type Scheme string

// Unqt implements [Value].
func (s Scheme) Unqt() Code {
	return func(ctx *Context) Doc {
		ctx.SetColorScheme(string(s))
		return UnqtText(string(s))(ctx)
	}
}

// Final implements [Finaler].
func (s Scheme) Final() Code {
	return func(ctx *Context) Doc {
		ctx.SetColorScheme(string(s))
		return QtText(string(s))(ctx)
	}
}

// SchemeColor is a slot in a named palette. When its scheme is the one
// currently active in the render context it renders as the bare slot
// number; otherwise it renders fully qualified as /scheme/slot. With no
// scheme ever set, the qualified form is used.
type SchemeColor struct {
	Scheme string
	Slot   int
}

func (SchemeColor) colorValue() {}

func (c SchemeColor) text(ctx *Context) string {
	if ctx.ColorScheme() == c.Scheme {
		return strconv.Itoa(c.Slot)
	}
	return "/" + c.Scheme + "/" + strconv.Itoa(c.Slot)
}

// Unqt implements [Value].
func (c SchemeColor) Unqt() Code {
	return func(ctx *Context) Doc {
		return UnqtText(c.text(ctx))(ctx)
	}
}

// Final implements [Finaler]. The abbreviated form is numeric and stays
// bare; the qualified form contains slashes and gets quoted.
func (c SchemeColor) Final() Code {
	return func(ctx *Context) Doc {
		return QtText(c.text(ctx))(ctx)
	}
}

// ColorList is a color sequence (gradients, parallel edge colors),
// colon-joined like [DoubleList].
type ColorList []Color

// Unqt implements [Value].
func (l ColorList) Unqt() Code {
	cs := make([]Code, len(l))
	for i, c := range l {
		cs[i] = c.Unqt()
	}
	return Join(Text(":"), cs)
}

// Final implements [Finaler]. A singleton degrades to the scalar final
// form.
func (l ColorList) Final() Code {
	if len(l) == 1 {
		return Final(l[0])
	}
	return Quoted(l.Unqt())
}
