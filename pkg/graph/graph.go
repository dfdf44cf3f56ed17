package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists in the graph or one of its subgraphs.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Attrs stores attribute name/value pairs for a graph, node, or edge.
// Values may be plain Go scalars or dot.Value implementations; see the
// package documentation for the mapping. Attrs maps are never nil after
// AddNode/AddEdge.
type Attrs map[string]any

// Node is a vertex with an ID and optional attributes. The ID doubles
// as the DOT node identifier; quoting is applied during rendering, so
// any text is a valid ID.
type Node struct {
	ID    string `json:"id" bson:"id"`
	Attrs Attrs  `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Edge is a connection between two nodes, directed when the graph is.
type Edge struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Attrs Attrs  `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Subgraph is a named group of nodes and edges. Names starting with
// "cluster" are drawn as visual clusters by Graphviz.
type Subgraph struct {
	Name      string     `json:"name,omitempty" bson:"name,omitempty"`
	Attrs     Attrs      `json:"attrs,omitempty" bson:"attrs,omitempty"`
	Nodes     []Node     `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Edges     []Edge     `json:"edges,omitempty" bson:"edges,omitempty"`
	Subgraphs []Subgraph `json:"subgraphs,omitempty" bson:"subgraphs,omitempty"`
}

// Graph is an attribute graph and the canonical serialization format
// for dotgen: the same struct round-trips through JSON files, API
// payloads, and the BSON document store.
//
// Nodes and edges render in insertion order; attribute maps render in
// sorted key order. The zero value is usable but [New] sets the common
// defaults.
type Graph struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Directed bool   `json:"directed" bson:"directed"`
	Strict   bool   `json:"strict,omitempty" bson:"strict,omitempty"`

	// Default attribute statements (graph [..], node [..], edge [..]).
	Attrs        Attrs `json:"attrs,omitempty" bson:"attrs,omitempty"`
	NodeDefaults Attrs `json:"node_defaults,omitempty" bson:"node_defaults,omitempty"`
	EdgeDefaults Attrs `json:"edge_defaults,omitempty" bson:"edge_defaults,omitempty"`

	Nodes     []Node     `json:"nodes" bson:"nodes"`
	Edges     []Edge     `json:"edges" bson:"edges"`
	Subgraphs []Subgraph `json:"subgraphs,omitempty" bson:"subgraphs,omitempty"`
}

// New creates an empty directed graph with the given name.
func New(name string) *Graph {
	return &Graph{Name: name, Directed: true}
}

// AddNode appends a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID when the ID is already taken anywhere in the
// graph, including subgraphs.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if g.hasNode(n.ID) {
		return fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID)
	}
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	g.Nodes = append(g.Nodes, n)
	return nil
}

// AddEdge appends an edge between existing nodes. Endpoints may live in
// subgraphs.
func (g *Graph) AddEdge(e Edge) error {
	if !g.hasNode(e.From) {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownSourceNode)
	}
	if !g.hasNode(e.To) {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownTargetNode)
	}
	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	g.Edges = append(g.Edges, e)
	return nil
}

// Node returns the node with the given ID, or nil. Subgraphs are
// searched depth-first.
func (g *Graph) Node(id string) *Node {
	if n := findNode(g.Nodes, id); n != nil {
		return n
	}
	return findNodeInSubgraphs(g.Subgraphs, id)
}

// Validate checks structural integrity of a graph assembled directly
// (e.g. decoded from JSON) rather than through AddNode/AddEdge: node IDs
// must be non-empty and unique, and every edge endpoint must exist.
func (g *Graph) Validate() error {
	seen := map[string]struct{}{}
	if err := collectIDs(g.Nodes, g.Subgraphs, seen); err != nil {
		return err
	}
	check := func(es []Edge) error {
		for _, e := range es {
			if _, ok := seen[e.From]; !ok {
				return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownSourceNode)
			}
			if _, ok := seen[e.To]; !ok {
				return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownTargetNode)
			}
		}
		return nil
	}
	if err := check(g.Edges); err != nil {
		return err
	}
	return validateSubgraphEdges(g.Subgraphs, check)
}

// AllNodes returns every node in the graph, top-level nodes first,
// then subgraph nodes depth-first in declaration order.
func (g *Graph) AllNodes() []Node {
	out := append([]Node(nil), g.Nodes...)
	var walk func(sgs []Subgraph)
	walk = func(sgs []Subgraph) {
		for _, sg := range sgs {
			out = append(out, sg.Nodes...)
			walk(sg.Subgraphs)
		}
	}
	walk(g.Subgraphs)
	return out
}

// AllEdges returns every edge in the graph, in the same order as AllNodes.
func (g *Graph) AllEdges() []Edge {
	out := append([]Edge(nil), g.Edges...)
	var walk func(sgs []Subgraph)
	walk = func(sgs []Subgraph) {
		for _, sg := range sgs {
			out = append(out, sg.Edges...)
			walk(sg.Subgraphs)
		}
	}
	walk(g.Subgraphs)
	return out
}

// NodeCount returns the number of nodes, including those in subgraphs.
func (g *Graph) NodeCount() int {
	return len(g.Nodes) + countSubgraphs(g.Subgraphs, func(sg *Subgraph) int { return len(sg.Nodes) })
}

// EdgeCount returns the number of edges, including those in subgraphs.
func (g *Graph) EdgeCount() int {
	return len(g.Edges) + countSubgraphs(g.Subgraphs, func(sg *Subgraph) int { return len(sg.Edges) })
}

func countSubgraphs(sgs []Subgraph, f func(*Subgraph) int) int {
	total := 0
	for i := range sgs {
		total += f(&sgs[i]) + countSubgraphs(sgs[i].Subgraphs, f)
	}
	return total
}

func (g *Graph) hasNode(id string) bool { return g.Node(id) != nil }

func findNode(ns []Node, id string) *Node {
	for i := range ns {
		if ns[i].ID == id {
			return &ns[i]
		}
	}
	return nil
}

func findNodeInSubgraphs(sgs []Subgraph, id string) *Node {
	for i := range sgs {
		if n := findNode(sgs[i].Nodes, id); n != nil {
			return n
		}
		if n := findNodeInSubgraphs(sgs[i].Subgraphs, id); n != nil {
			return n
		}
	}
	return nil
}

func collectIDs(ns []Node, sgs []Subgraph, seen map[string]struct{}) error {
	for _, n := range ns {
		if n.ID == "" {
			return ErrInvalidNodeID
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, sg := range sgs {
		if err := collectIDs(sg.Nodes, sg.Subgraphs, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateSubgraphEdges(sgs []Subgraph, check func([]Edge) error) error {
	for _, sg := range sgs {
		if err := check(sg.Edges); err != nil {
			return err
		}
		if err := validateSubgraphEdges(sg.Subgraphs, check); err != nil {
			return err
		}
	}
	return nil
}
