// Package graph provides the attribute-graph model that dotgen renders
// to DOT.
//
// # Overview
//
// A [Graph] holds nodes, edges, and optional subgraphs, each carrying an
// attribute map. The same type is the canonical serialization format:
// JSON and BSON tags make it usable for files, API payloads, and the
// document store without conversion.
//
// # Basic Usage
//
// Build a graph with [New], [Graph.AddNode], and [Graph.AddEdge], then
// emit DOT with [Graph.DOT]:
//
//	g := graph.New("deps")
//	g.AddNode(graph.Node{ID: "app", Attrs: graph.Attrs{"label": "my app"}})
//	g.AddNode(graph.Node{ID: "lib"})
//	g.AddEdge(graph.Edge{From: "app", To: "lib"})
//	fmt.Print(g.DOT())
//
// All identifier quoting and value escaping is handled by pkg/dot; node
// IDs and attribute values may contain any text.
//
// # Attributes
//
// Attrs maps attribute names to values. Plain Go values (string, bool,
// int, float64) map onto the corresponding DOT value types; a value
// already implementing dot.Value is rendered as-is, which is how typed
// colors and color schemes are carried. Attribute maps are emitted in
// sorted key order so output is deterministic.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Rendering the
// same graph from multiple goroutines is safe once mutation has
// stopped.
package graph
