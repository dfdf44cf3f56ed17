package graph

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New("test")
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate AddNode() error = %v, want ErrDuplicateNodeID", err)
	}
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty AddNode() error = %v, want ErrInvalidNodeID", err)
	}
}

func TestAddEdge(t *testing.T) {
	g := New("test")
	g.AddNode(Node{ID: "a"})
	g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge() error = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge() error = %v, want ErrUnknownTargetNode", err)
	}
}

func TestNodeLookupInSubgraphs(t *testing.T) {
	g := New("test")
	g.Subgraphs = []Subgraph{{
		Name:  "cluster_inner",
		Nodes: []Node{{ID: "deep"}},
	}}

	if g.Node("deep") == nil {
		t.Error("Node() should find nodes inside subgraphs")
	}
	if err := g.AddEdge(Edge{From: "deep", To: "deep"}); err != nil {
		t.Errorf("AddEdge() with subgraph endpoint error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Graph
		wantErr error
	}{
		{
			name: "valid",
			g: Graph{
				Nodes: []Node{{ID: "a"}, {ID: "b"}},
				Edges: []Edge{{From: "a", To: "b"}},
			},
		},
		{
			name:    "empty id",
			g:       Graph{Nodes: []Node{{ID: ""}}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "duplicate across subgraph",
			g:       Graph{Nodes: []Node{{ID: "a"}}, Subgraphs: []Subgraph{{Nodes: []Node{{ID: "a"}}}}},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "dangling edge",
			g:       Graph{Nodes: []Node{{ID: "a"}}, Edges: []Edge{{From: "a", To: "ghost"}}},
			wantErr: ErrUnknownTargetNode,
		},
		{
			name: "dangling subgraph edge",
			g: Graph{
				Nodes:     []Node{{ID: "a"}},
				Subgraphs: []Subgraph{{Edges: []Edge{{From: "ghost", To: "a"}}}},
			},
			wantErr: ErrUnknownSourceNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCountsAndTraversal(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
		Subgraphs: []Subgraph{{
			Name:  "cluster_inner",
			Nodes: []Node{{ID: "c"}},
			Edges: []Edge{{From: "b", To: "c"}},
			Subgraphs: []Subgraph{{
				Nodes: []Node{{ID: "d"}},
			}},
		}},
	}

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}

	ids := []string{}
	for _, n := range g.AllNodes() {
		ids = append(ids, n.ID)
	}
	want := []string{"a", "b", "c", "d"}
	if len(ids) != len(want) {
		t.Fatalf("AllNodes() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("AllNodes()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if got := len(g.AllEdges()); got != 2 {
		t.Errorf("AllEdges() returned %d edges, want 2", got)
	}
}
