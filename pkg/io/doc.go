// Package io reads and writes dotgen graph files.
//
// Two authoring formats are supported:
//
//   - JSON: the canonical node-link format produced and consumed by the
//     API and the document store.
//   - TOML: a hand-editing friendly format for small graphs.
//
// Both decode into [graph.Graph] and validate structure on the way in
// (unique non-empty node IDs, edge endpoints that exist). [Import]
// dispatches on the file extension.
//
// # JSON format
//
//	{
//	  "name": "deps",
//	  "directed": true,
//	  "nodes": [{"id": "app", "attrs": {"label": "my app"}}],
//	  "edges": [{"from": "app", "to": "lib"}]
//	}
//
// # TOML format
//
//	name = "deps"
//	directed = true
//
//	[[nodes]]
//	id = "app"
//	[nodes.attrs]
//	label = "my app"
//
//	[[edges]]
//	from = "app"
//	to = "lib"
package io
