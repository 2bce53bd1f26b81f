// Package graph provides the canonical state store and DAG of board
// states reachable by tile placements.
//
// Nodes are board snapshots held in an arena and identified by dense ids
// assigned in discovery order; id 0 is always the initial board. The
// content index deduplicates boards reached via different placement
// orders, collapsing the exponential search tree into a DAG whose edges
// record single placements. Edge lists are ordered (discovery order) and
// rev edges are maintained as the exact transpose of edges.
package graph

import (
	"errors"
	"fmt"

	"github.com/tilerdev/tiler/pkg/board"
)

// ErrUnknownNode is returned by AddEdge when an endpoint id has not been
// assigned by the store. It indicates engine corruption.
var ErrUnknownNode = errors.New("unknown node id")

// Graph is the arena-plus-index store of canonical board states.
// It is exclusively owned by one engine run and is not safe for
// concurrent use.
type Graph struct {
	nodes    []*board.Board
	index    map[string]int // board key -> node id
	edges    map[int][]int
	rev      map[int][]int
	complete []int
	isComp   map[int]struct{}
}

// New creates a store with the initial board pre-registered as node 0.
func New(initial *board.Board) *Graph {
	g := &Graph{
		index:  make(map[string]int),
		edges:  make(map[int][]int),
		rev:    make(map[int][]int),
		isComp: make(map[int]struct{}),
	}
	g.nodes = append(g.nodes, initial)
	g.index[initial.Key()] = 0
	return g
}

// Canonicalize returns the node id for the board's content, assigning the
// next dense id on first sight. existed reports whether the content was
// already registered; on a hit the store is not mutated and the given
// board is discarded in favor of the stored one.
func (g *Graph) Canonicalize(b *board.Board) (id int, existed bool) {
	key := b.Key()
	if id, ok := g.index[key]; ok {
		return id, true
	}
	id = len(g.nodes)
	g.nodes = append(g.nodes, b)
	g.index[key] = id
	return id, false
}

// Node returns the board stored for id, or nil if out of range.
func (g *Graph) Node(id int) *board.Board {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// NodeCount returns the number of canonical states discovered.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, ts := range g.edges {
		n += len(ts)
	}
	return n
}

// AddEdge records that one placement transforms node s into node t.
// Multiple edges between the same pair stay distinct: each edge is one
// placement, and counting treats them as separate ways of reaching t.
func (g *Graph) AddEdge(s, t int) error {
	if s < 0 || s >= len(g.nodes) {
		return fmt.Errorf("%w: source %d", ErrUnknownNode, s)
	}
	if t < 0 || t >= len(g.nodes) {
		return fmt.Errorf("%w: target %d", ErrUnknownNode, t)
	}
	g.edges[s] = append(g.edges[s], t)
	g.rev[t] = append(g.rev[t], s)
	return nil
}

// Edges returns the outgoing neighbor ids of a node in discovery order.
// The returned slice must not be modified.
func (g *Graph) Edges(id int) []int { return g.edges[id] }

// RevEdges returns the incoming neighbor ids of a node in discovery order.
// The returned slice must not be modified.
func (g *Graph) RevEdges(id int) []int { return g.rev[id] }

// MarkComplete records that the node's board has every cell covered.
// Marking a node twice is a no-op.
func (g *Graph) MarkComplete(id int) {
	if _, ok := g.isComp[id]; ok {
		return
	}
	g.isComp[id] = struct{}{}
	g.complete = append(g.complete, id)
}

// Complete returns the ids of complete nodes in discovery order.
// The returned slice must not be modified.
func (g *Graph) Complete() []int { return g.complete }

// IsComplete reports whether the node has been marked complete.
func (g *Graph) IsComplete(id int) bool {
	_, ok := g.isComp[id]
	return ok
}
