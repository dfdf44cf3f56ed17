package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// DOT renders the graph as a complete DOT document, terminated with a
// newline. Output is deterministic: nodes and edges in insertion order,
// attribute maps in sorted key order.
func (g *Graph) DOT() string {
	return dot.Render(g.Code()) + "\n"
}

// Code returns the deferred rendering computation for the graph, for
// callers composing it into a larger document.
func (g *Graph) Code() dot.Code {
	head := []dot.Code{}
	if g.Strict {
		head = append(head, dot.Text("strict "))
	}
	if g.Directed {
		head = append(head, dot.Text("digraph"))
	} else {
		head = append(head, dot.Text("graph"))
	}
	if g.Name != "" {
		head = append(head, dot.Text(" "), dot.QtText(g.Name))
	}
	head = append(head, dot.Text(" "))

	return dot.Seq(dot.Seq(head...), block(g.stmts()))
}

func (g *Graph) stmts() []dot.Code {
	op := edgeOp(g.Directed)
	var out []dot.Code
	out = appendDefaults(out, "graph", g.Attrs)
	out = appendDefaults(out, "node", g.NodeDefaults)
	out = appendDefaults(out, "edge", g.EdgeDefaults)
	for _, sg := range g.Subgraphs {
		out = append(out, subgraphStmt(sg, op))
	}
	for _, n := range g.Nodes {
		out = append(out, nodeStmt(n))
	}
	for _, e := range g.Edges {
		out = append(out, edgeStmt(e, op))
	}
	return out
}

func edgeOp(directed bool) string {
	if directed {
		return " -> "
	}
	return " -- "
}

// block lays statements out one per line inside braces, indented two
// spaces. An empty body renders as {}.
func block(stmts []dot.Code) dot.Code {
	if len(stmts) == 0 {
		return dot.Text("{}")
	}
	inner := make([]dot.Code, 0, 2*len(stmts))
	for _, s := range stmts {
		inner = append(inner, dot.HardLine(), s)
	}
	return dot.Seq(dot.Text("{"), dot.Nest(2, dot.Seq(inner...)), dot.HardLine(), dot.Text("}"))
}

func appendDefaults(out []dot.Code, kind string, as Attrs) []dot.Code {
	if len(as) == 0 {
		return out
	}
	return append(out, dot.Seq(dot.Text(kind), dot.Text(" "), attrsCode(as), dot.Text(";")))
}

// NodeStatement renders the DOT statement for a single node, the same
// text it would get inside a full graph rendering.
func NodeStatement(n Node) string {
	return dot.Render(nodeStmt(n))
}

func nodeStmt(n Node) dot.Code {
	c := dot.QtText(n.ID)
	if len(n.Attrs) > 0 {
		c = dot.Seq(c, dot.Text(" "), attrsCode(n.Attrs))
	}
	return dot.Seq(c, dot.Text(";"))
}

func edgeStmt(e Edge, op string) dot.Code {
	c := dot.Seq(dot.QtText(e.From), dot.Text(op), dot.QtText(e.To))
	if len(e.Attrs) > 0 {
		c = dot.Seq(c, dot.Text(" "), attrsCode(e.Attrs))
	}
	return dot.Seq(c, dot.Text(";"))
}

func subgraphStmt(sg Subgraph, op string) dot.Code {
	var out []dot.Code
	out = appendDefaults(out, "graph", sg.Attrs)
	for _, inner := range sg.Subgraphs {
		out = append(out, subgraphStmt(inner, op))
	}
	for _, n := range sg.Nodes {
		out = append(out, nodeStmt(n))
	}
	for _, e := range sg.Edges {
		out = append(out, edgeStmt(e, op))
	}

	head := dot.Empty()
	if sg.Name != "" {
		head = dot.Seq(dot.Text("subgraph "), dot.QtText(sg.Name), dot.Text(" "))
	}
	return dot.Seq(head, block(out))
}

// attrsCode renders an attribute map in sorted key order so that output
// never depends on map iteration.
func attrsCode(as Attrs) dot.Code {
	list := make(dot.Attrs, 0, len(as))
	for _, k := range slices.Sorted(maps.Keys(as)) {
		list = append(list, dot.Attr{Name: k, Value: attrValue(as[k])})
	}
	return list.Code()
}

// attrValue maps a plain Go value onto its DOT value type. Values that
// already implement dot.Value (typed colors, schemes, HTML labels) pass
// through untouched, which keeps the render-context side effects of
// color schemes intact.
func attrValue(v any) dot.Value {
	switch x := v.(type) {
	case dot.Value:
		return x
	case string:
		return dot.Str(x)
	case bool:
		return dot.Bool(x)
	case int:
		return dot.Int(x)
	case int64:
		return dot.Int(x)
	case float64:
		return dot.Double(x)
	case float32:
		return dot.Double(x)
	case []float64:
		l := make(dot.DoubleList, len(x))
		for i, d := range x {
			l[i] = dot.Double(d)
		}
		return l
	default:
		return dot.Str(fmt.Sprintf("%v", x))
	}
}
