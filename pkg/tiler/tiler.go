// Package tiler implements the tiling search engine: exploration of the
// board-state graph, exact counting with arbitrary precision, and
// sampling/enumeration of complete tilings.
//
// Two counting paths exist and always agree:
//
//   - [Tiler.CountGraph] propagates path counts over a materialized state
//     graph in layer order. Use it when the graph is wanted anyway.
//   - [Tiler.QuickCount] fuses counting with the search, keeping only the
//     current frontier of board states. It never materializes the node and
//     edge arena, making it the memory-efficient path for large boards.
//
// Counts routinely exceed 64 bits, so all arithmetic uses math/big.
package tiler

import (
	"math/big"

	"github.com/tilerdev/tiler/pkg/board"
	"github.com/tilerdev/tiler/pkg/graph"
	"github.com/tilerdev/tiler/pkg/tile"
)

// Tiler explores tilings of one initial board by one tile collection.
// The zero value is not usable; construct with New.
type Tiler struct {
	tiles   tile.Collection
	initial *board.Board
}

// New creates an engine for the given tile collection and initial board.
func New(tiles tile.Collection, initial *board.Board) *Tiler {
	return &Tiler{tiles: tiles, initial: initial}
}

// BuildGraph explores every board state reachable from the initial board
// and materializes the state DAG. The traversal is an explicit-stack
// depth-first search: each newly discovered state is pushed exactly once,
// so every node is expanded at most once regardless of how many placement
// orders reach it. Complete nodes are terminal and never pushed.
func (t *Tiler) BuildGraph() (*graph.Graph, error) {
	g := graph.New(t.initial)
	if t.initial.Complete() {
		g.MarkComplete(0)
		return g, nil
	}

	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := g.Node(id)
		for _, p := range board.Placements(b, t.tiles) {
			child, err := b.Apply(p)
			if err != nil {
				return nil, err
			}
			cid, existed := g.Canonicalize(child)
			if err := g.AddEdge(id, cid); err != nil {
				return nil, err
			}
			if existed {
				continue
			}
			if child.Complete() {
				g.MarkComplete(cid)
			} else {
				stack = append(stack, cid)
			}
		}
	}
	return g, nil
}

// CountGraph counts complete tilings by propagating path counts over a
// materialized graph. Every placement covers the same number of cells, so
// all parents of a node sit in the same breadth layer and a frontier sweep
// from node 0 is a valid topological order. The result is the sum over
// all complete nodes of the number of root paths reaching them.
func (t *Tiler) CountGraph(g *graph.Graph) *big.Int {
	total := new(big.Int)
	if len(g.Complete()) == 0 {
		return total
	}

	counts := map[int]*big.Int{0: big.NewInt(1)}
	frontier := []int{0}
	for len(frontier) > 0 {
		next := make(map[int]struct{})
		for _, id := range frontier {
			c := counts[id]
			for _, tgt := range g.Edges(id) {
				acc, ok := counts[tgt]
				if !ok {
					acc = new(big.Int)
					counts[tgt] = acc
				}
				acc.Add(acc, c)
				next[tgt] = struct{}{}
			}
		}
		frontier = frontier[:0]
		for id := range next {
			frontier = append(frontier, id)
		}
	}

	for _, id := range g.Complete() {
		if c, ok := counts[id]; ok {
			total.Add(total, c)
		}
	}
	return total
}

// Count returns the exact number of complete tilings. It uses the
// memory-efficient fused path; callers wanting the graph as well should
// use BuildGraph followed by CountGraph.
func (t *Tiler) Count() (*big.Int, error) {
	return t.QuickCount()
}

// QuickCount counts complete tilings without materializing the graph.
// It sweeps the state space one layer at a time, memoizing path counts by
// canonical board content; only the current frontier is retained, so
// memory is bounded by the widest layer rather than the whole DAG.
func (t *Tiler) QuickCount() (*big.Int, error) {
	type entry struct {
		b     *board.Board
		count *big.Int
	}

	total := new(big.Int)
	if t.initial.Complete() {
		return total.SetInt64(1), nil
	}

	frontier := map[string]*entry{
		t.initial.Key(): {b: t.initial, count: big.NewInt(1)},
	}
	for len(frontier) > 0 {
		next := make(map[string]*entry)
		for _, e := range frontier {
			for _, p := range board.Placements(e.b, t.tiles) {
				child, err := e.b.Apply(p)
				if err != nil {
					return nil, err
				}
				key := child.Key()
				ne, ok := next[key]
				if !ok {
					ne = &entry{b: child, count: new(big.Int)}
					next[key] = ne
				}
				ne.count.Add(ne.count, e.count)
			}
		}
		for key, e := range next {
			if e.b.Complete() {
				total.Add(total, e.count)
				delete(next, key)
			}
		}
		frontier = next
	}
	return total, nil
}
