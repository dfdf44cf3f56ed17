package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dotgen/pkg/graph"
)

// WriteJSON encodes g as indented JSON and writes it to w. The output
// re-imports with [ReadJSON] for round-trip processing.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path. Convenience wrapper
// around [WriteJSON].
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// WriteDOT renders g and writes the DOT text to w.
func WriteDOT(g *graph.Graph, w io.Writer) error {
	if _, err := io.WriteString(w, g.DOT()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportDOT writes the rendered DOT for g to a file at path.
func ExportDOT(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDOT(g, f)
}
