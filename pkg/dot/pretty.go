package dot

import "strings"

// Layout targets. The ribbon fraction caps how much of a line may hold
// actual text once indentation is subtracted.
const (
	pageWidth  = 80
	ribbonFrac = 0.4
)

// Doc is a deferred layout document: a tree of text, separators, groups,
// and indentation built during rendering and laid out in a single pass
// by [layout].
type Doc struct {
	kind docKind
	text string
	kids []Doc
	ind  int
}

type docKind uint8

const (
	docText docKind = iota
	docConcat
	docLine // space when flat, newline otherwise
	docHard // newline, never flattened
	docGroup
	docNest
)

func text(s string) Doc         { return Doc{kind: docText, text: s} }
func concat(ds ...Doc) Doc      { return Doc{kind: docConcat, kids: ds} }
func line() Doc                 { return Doc{kind: docLine} }
func hardline() Doc             { return Doc{kind: docHard} }
func group(d Doc) Doc           { return Doc{kind: docGroup, kids: []Doc{d}} }
func nest(ind int, d Doc) Doc   { return Doc{kind: docNest, kids: []Doc{d}, ind: ind} }
func dquotes(d Doc) Doc         { return concat(text(`"`), d, text(`"`)) }

// frame is one pending document during layout, carrying the indentation
// and flattening mode it was pushed under.
type frame struct {
	ind  int
	flat bool
	doc  Doc
}

// layout produces the final text for d. Groups are rendered on one line
// when their flattened width fits in the remaining space, otherwise
// every Line inside them breaks. Greedy fitting, no backtracking.
func layout(d Doc, width int, ribbon float64) string {
	ribbonWidth := int(ribbon * float64(width))

	var b strings.Builder
	col := 0
	lineInd := 0
	stack := []frame{{0, false, d}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.doc.kind {
		case docText:
			b.WriteString(f.doc.text)
			col += len(f.doc.text)
		case docConcat:
			for i := len(f.doc.kids) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.ind, f.flat, f.doc.kids[i]})
			}
		case docNest:
			stack = append(stack, frame{f.ind + f.doc.ind, f.flat, f.doc.kids[0]})
		case docLine:
			if f.flat {
				b.WriteByte(' ')
				col++
				break
			}
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", f.ind))
			col = f.ind
			lineInd = f.ind
		case docHard:
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", f.ind))
			col = f.ind
			lineInd = f.ind
		case docGroup:
			space := width - col
			if r := lineInd + ribbonWidth - col; r < space {
				space = r
			}
			flat := f.flat || fits(f.doc.kids[0], space)
			stack = append(stack, frame{f.ind, flat, f.doc.kids[0]})
		}
	}
	return b.String()
}

// fits reports whether d, rendered flat, needs at most space columns.
func fits(d Doc, space int) bool {
	if space < 0 {
		return false
	}
	return flatWidth(d, space) <= space
}

// flatWidth computes the single-line width of d, giving up once the
// width exceeds limit. A hard line never fits.
func flatWidth(d Doc, limit int) int {
	w := 0
	stack := []Doc{d}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cur.kind {
		case docText:
			w += len(cur.text)
		case docLine:
			w++
		case docHard:
			return limit + 1
		case docConcat, docGroup, docNest:
			stack = append(stack, cur.kids...)
		}
		if w > limit {
			return w
		}
	}
	return w
}
