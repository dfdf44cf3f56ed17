// Package pkg provides the core libraries for dotgen graph serialization.
//
// # Overview
//
// Dotgen turns graph documents into well-formed Graphviz DOT. The pkg
// directory is organized into four main areas:
//
//  1. [dot] - The DOT serialization engine (quoting, escaping, layout)
//  2. [graph] - The graph document model (nodes, edges, subgraphs, attributes)
//  3. [io] - Import/export of graph documents (JSON, TOML, DOT)
//  4. [pipeline] - Orchestration (import → render) with caching
//
// Supporting packages: [cache] (render cache backends), [store] (persisted
// graph documents for the HTTP API), [errors] (coded errors), [buildinfo]
// (version stamping), and [observability] (instrumentation hooks).
//
// # Architecture
//
// The typical data flow through dotgen:
//
//	JSON/TOML document
//	         ↓
//	    [graph] package (document model + validation)
//	         ↓
//	    [dot] package (quoting, escaping, pretty-printing)
//	         ↓
//	    DOT output
//
// # Quick Start
//
// Build a graph and render it:
//
//	import "github.com/matzehuels/dotgen/pkg/graph"
//
//	g := graph.New("deps")
//	_ = g.AddNode(graph.Node{ID: "app", Attrs: graph.Attrs{"label": "my app"}})
//	_ = g.AddNode(graph.Node{ID: "lib"})
//	_ = g.AddEdge(graph.Edge{From: "app", To: "lib"})
//	fmt.Print(g.DOT())
//
// Or work with the serialization engine directly:
//
//	import "github.com/matzehuels/dotgen/pkg/dot"
//
//	code := dot.Field("label", dot.Str(`he said "hi"`))
//	fmt.Println(dot.Render(code)) // label="he said \"hi\""
//
// # Main Packages
//
// [dot] - Text-level DOT serialization: identifier classification, string
// escaping, numeric formatting, color values, and a width-aware layout
// engine. This is where the DOT language's quoting rules live.
//
// [graph] - The document model shared by files, API payloads, and the
// document store. Validation catches duplicate node IDs and dangling edge
// endpoints before rendering.
//
// [io] - Readers and writers for graph documents: JSON and TOML in, DOT
// and JSON out.
//
// [pipeline] - The import → render pipeline used by both the CLI and the
// HTTP server, with content-addressed caching of rendered output.
package pkg
