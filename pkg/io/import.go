package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotgen/pkg/graph"
)

// ReadJSON decodes a JSON graph from r and validates it.
//
// ReadJSON returns an error if the JSON is malformed, a node ID is
// empty or duplicated, or an edge references an unknown node. Errors
// wrap the graph package's sentinel errors, so callers can test them
// with errors.Is. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var g graph.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReadTOML decodes a TOML graph from r and validates it, with the same
// error semantics as [ReadJSON].
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	var g graph.Graph
	if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Import reads a graph file at path, choosing the decoder by file
// extension: .toml uses [ReadTOML], everything else [ReadJSON].
func Import(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		g, err := ReadTOML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	}
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
