package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dotgen/pkg/graph"
)

func previewGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("deps")
	for _, id := range []string{"app", "lib", "util"} {
		if err := g.AddNode(graph.Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(graph.Edge{From: "app", To: "lib"}); err != nil {
		t.Fatal(err)
	}
	return g
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNodeListModelNavigation(t *testing.T) {
	m := NewNodeListModel(previewGraph(t))

	next, _ := m.Update(keyMsg("down"))
	m = next.(NodeListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(NodeListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.Cursor)
	}

	// Cursor never goes below zero.
	next, _ = m.Update(keyMsg("k"))
	m = next.(NodeListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestNodeListModelSelect(t *testing.T) {
	m := NewNodeListModel(previewGraph(t))

	next, _ := m.Update(keyMsg("down"))
	m = next.(NodeListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(NodeListModel)

	if m.Selected == nil || m.Selected.ID != "lib" {
		t.Fatalf("selected = %v, want lib", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestNodeListModelView(t *testing.T) {
	m := NewNodeListModel(previewGraph(t))
	view := m.View()

	if !strings.Contains(view, "deps") {
		t.Error("view should show the graph name")
	}
	for _, id := range []string{"app", "lib", "util"} {
		if !strings.Contains(view, id) {
			t.Errorf("view should list node %s", id)
		}
	}
}
