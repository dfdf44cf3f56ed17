package dot

import (
	"math"
	"strconv"
	"strings"
)

// Int renders as a plain decimal literal, never quoted.
type Int int

// Unqt implements [Value].
func (i Int) Unqt() Code { return Text(strconv.Itoa(int(i))) }

// Double is a floating-point attribute value.
//
// Graphviz treats "4" and "4.0" as the same number and the shorter form
// is conventional, so integral values print without a decimal point.
// Non-integral values use the shortest round-tripping decimal form; when
// that form needs exponent notation, which is not a legal bare numeric
// literal, the final rendering wraps it in quotes.
type Double float64

// maxExactInt bounds the integral shortcut: above 2^53 float64 cannot
// represent every integer, so larger values keep the decimal form.
const maxExactInt = 1 << 53

// formatDouble renders f in its unquoted textual form.
func formatDouble(f float64) string {
	if f == math.Round(f) && math.Abs(f) < maxExactInt {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Unqt implements [Value].
func (d Double) Unqt() Code { return Text(formatDouble(float64(d))) }

// Final implements [Finaler]: exponent forms are quoted, everything
// else renders bare.
func (d Double) Final() Code {
	s := formatDouble(float64(d))
	if strings.ContainsAny(s, "eE") {
		return Quoted(Text(s))
	}
	return Text(s)
}

// DoubleList overrides the generic list notation: DOT joins double
// sequences with colons (the point/spline coordinate convention).
type DoubleList []Double

// Unqt implements [Value]: elements colon-joined, no quotes.
func (l DoubleList) Unqt() Code {
	cs := make([]Code, len(l))
	for i, d := range l {
		cs[i] = d.Unqt()
	}
	return Join(Text(":"), cs)
}

// Final implements [Finaler]. A singleton degrades to the scalar final
// form; anything longer is the quoted colon-joined sequence.
func (l DoubleList) Final() Code {
	if len(l) == 1 {
		return l[0].Final()
	}
	return Quoted(l.Unqt())
}
