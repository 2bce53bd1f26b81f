package tiler

import (
	"math/rand"
	"slices"

	"github.com/tilerdev/tiler/pkg/board"
	"github.com/tilerdev/tiler/pkg/graph"
)

// DefaultSampleCap bounds how many complete tiling paths the sampler
// captures before stopping. Capture stops at the cap, so when more
// tilings exist than the cap covers, sampling is not guaranteed to range
// over all of them; re-running with another seed may yield a tiling the
// previous run could never have produced. That is documented behavior,
// not a defect.
const DefaultSampleCap = 1000

// CapturePaths runs a depth-first search and captures complete tiling
// paths, each an ordered board sequence from the initial board to a
// complete board. At most limit paths are captured; limit <= 0 means
// unbounded. If the true number of complete tilings is within the limit,
// every one of them is captured exactly once.
func (t *Tiler) CapturePaths(limit int) ([][]*board.Board, error) {
	var captured [][]*board.Board

	stack := [][]*board.Board{{t.initial}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur := path[len(path)-1]
		for _, p := range board.Placements(cur, t.tiles) {
			child, err := cur.Apply(p)
			if err != nil {
				return nil, err
			}
			next := append(slices.Clone(path), child)
			if child.Complete() {
				captured = append(captured, next)
				if limit > 0 && len(captured) == limit {
					return captured, nil
				}
			} else {
				stack = append(stack, next)
			}
		}
	}
	return captured, nil
}

// Sample captures up to limit complete tiling paths and returns one of
// them uniformly at random from rng. Returns nil if the board admits no
// complete tiling, which is a normal outcome.
func (t *Tiler) Sample(limit int, rng *rand.Rand) ([]*board.Board, error) {
	paths, err := t.CapturePaths(limit)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}
	return paths[rng.Intn(len(paths))], nil
}

// EnumerateAll lists complete tiling paths from a materialized graph by
// walking rev edges from each complete node back to node 0. Paths are
// returned in root-to-complete order. At most limit paths are returned;
// limit <= 0 enumerates every tiling.
func EnumerateAll(g *graph.Graph, limit int) [][]*board.Board {
	var out [][]*board.Board

	for _, ci := range g.Complete() {
		stack := [][]int{{ci}}
		for len(stack) > 0 {
			ids := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			last := ids[len(ids)-1]
			if last == 0 {
				path := make([]*board.Board, len(ids))
				for i, id := range ids {
					path[len(ids)-1-i] = g.Node(id)
				}
				out = append(out, path)
				if limit > 0 && len(out) == limit {
					return out
				}
				continue
			}
			for _, p := range g.RevEdges(last) {
				stack = append(stack, append(slices.Clone(ids), p))
			}
		}
	}
	return out
}
