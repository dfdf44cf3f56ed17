package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/graph"
	gio "github.com/matzehuels/dotgen/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for browsing a graph document.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Browse a graph document interactively",
		Long: `Browse a graph document interactively.

Opens a terminal browser over the nodes of a JSON or TOML graph
document. Selecting a node prints its DOT statement, which is useful
for checking how identifiers and attribute values will be quoted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gio.Import(args[0])
			if err != nil {
				return err
			}
			return runPreview(g)
		},
	}
}

func runPreview(g *graph.Graph) error {
	model := NewNodeListModel(g)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(NodeListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	printInfo("Node %s", m.Selected.ID)
	printDetail("%s", graph.NodeStatement(*m.Selected))
	return nil
}

// =============================================================================
// NodeListModel - Interactive node browsing
// =============================================================================

// NodeListModel is the bubbletea model for browsing graph nodes.
type NodeListModel struct {
	Graph    *graph.Graph
	Nodes    []graph.Node
	Cursor   int
	Selected *graph.Node
	Height   int
	Offset   int
}

// NewNodeListModel creates a node list model over all nodes of g,
// including those inside subgraphs.
func NewNodeListModel(g *graph.Graph) NodeListModel {
	return NodeListModel{
		Graph:  g,
		Nodes:  g.AllNodes(),
		Height: 15,
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Nodes) > 0 {
				m.Selected = &m.Nodes[m.Cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	title := m.Graph.Name
	if title == "" {
		title = "(unnamed graph)"
	}
	b.WriteString(StyleTitle.Render("Graph " + title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Nodes) {
		end = len(m.Nodes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{cursor, n.ID, nodeLabel(n), attrSummary(n.Attrs), fmt.Sprintf("%d", m.degree(n.ID))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Label", "Attributes", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d edges total", m.Cursor+1, len(m.Nodes), m.Graph.EdgeCount())))

	return b.String()
}

// degree counts edges touching the node at top level and in subgraphs.
func (m NodeListModel) degree(id string) int {
	count := 0
	for _, es := range m.Graph.AllEdges() {
		if es.From == id || es.To == id {
			count++
		}
	}
	return count
}

func nodeLabel(n graph.Node) string {
	if l, ok := n.Attrs["label"].(string); ok {
		return l
	}
	return "—"
}

// attrSummary renders attribute names as a short sorted list.
func attrSummary(as graph.Attrs) string {
	if len(as) == 0 {
		return "—"
	}
	names := make([]string, 0, len(as))
	for name := range as {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
