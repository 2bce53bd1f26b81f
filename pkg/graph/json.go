package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// jsonNode is one arena entry in the serialized document.
type jsonNode struct {
	Board [][]bool `json:"board"`
}

// jsonGraph is the serialized document layout. Adjacency keys are decimal
// node ids; neighbor lists keep discovery order and permit duplicates.
type jsonGraph struct {
	NodesArena      []jsonNode       `json:"nodes_arena"`
	Edges           map[string][]int `json:"edges"`
	RevEdges        map[string][]int `json:"rev_edges"`
	CompleteIndices []int            `json:"complete_indices"`
}

// MarshalGraph converts the graph to JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes the graph as JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	out := jsonGraph{
		NodesArena:      make([]jsonNode, g.NodeCount()),
		Edges:           make(map[string][]int, len(g.edges)),
		RevEdges:        make(map[string][]int, len(g.rev)),
		CompleteIndices: g.complete,
	}
	if out.CompleteIndices == nil {
		out.CompleteIndices = []int{}
	}
	for id, b := range g.nodes {
		out.NodesArena[id] = jsonNode{Board: b.Cells()}
	}
	for id, ts := range g.edges {
		out.Edges[strconv.Itoa(id)] = ts
	}
	for id, ss := range g.rev {
		out.RevEdges[strconv.Itoa(id)] = ss
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// WriteGraphFile writes the graph to a JSON file at path.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}
