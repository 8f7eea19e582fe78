package cubesolver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Setup search. Each stage needs short move products that carry a
// macro's support onto the cubies being fixed; bounds of a few moves
// suffice, so a plain breadth-first product search beats building
// pattern databases.

// projection maps a state to the part of it a stage's search cares
// about. Deduplicating on the projection instead of the full state
// keeps frontiers small: two setups moving the same cubies to the
// same slots conjugate a macro identically even when their
// orientations differ.
type projection func(State) string

func cornerKey(s State) string { return string(s.cp[:]) }
func edgeKey(s State) string   { return string(s.ep[:]) }

type searchNode struct {
	state  State
	parent int32
	gen    int8 // index into the alphabet, -1 at the root
}

// Frontiers below this stay on one goroutine; the fan-out cost is not
// worth it for the first level or two.
const parallelFrontier = 2048

// searchSetup finds a shortest product of face turns whose state
// satisfies accept, or ErrStageExhausted if none exists within
// maxDepth moves. The search is breadth-first over the 18-move
// alphabet, prunes consecutive turns of the same face, and is
// deterministic: ties resolve in alphabet order.
func searchSetup(ctx context.Context, t *solveTables, key projection, accept func(State) bool, maxDepth int) (element, error) {
	if accept(Solved()) {
		return elem(), nil
	}

	visited := map[string]struct{}{key(Solved()): {}}
	nodes := []searchNode{{state: Solved(), parent: -1, gen: -1}}
	frontier := []int32{0}

	for depth := 0; depth < maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return element{}, err
		}

		cands, err := expand(ctx, t, nodes, frontier)
		if err != nil {
			return element{}, err
		}

		var next []int32
		for _, c := range cands {
			k := key(c.state)
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}
			nodes = append(nodes, c)
			if accept(c.state) {
				return reconstruct(t, nodes, int32(len(nodes)-1)), nil
			}
			next = append(next, int32(len(nodes)-1))
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return element{}, ErrStageExhausted
}

// expand produces the children of every frontier node, in frontier
// order. Large frontiers are split across goroutines; each chunk
// writes to its own slice so the merged order never depends on
// scheduling.
func expand(ctx context.Context, t *solveTables, nodes []searchNode, frontier []int32) ([]searchNode, error) {
	if len(frontier) < parallelFrontier {
		return expandChunk(t, nodes, frontier), nil
	}

	workers := runtime.NumCPU()
	chunkLen := (len(frontier) + workers - 1) / workers
	chunks := make([][]searchNode, workers)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunkLen
		if lo >= len(frontier) {
			break
		}
		hi := min(lo+chunkLen, len(frontier))
		g.Go(func() error {
			chunks[lo/chunkLen] = expandChunk(t, nodes, frontier[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []searchNode
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}

func expandChunk(t *solveTables, nodes []searchNode, frontier []int32) []searchNode {
	out := make([]searchNode, 0, len(frontier)*15)
	for _, idx := range frontier {
		n := nodes[idx]
		for gi, gen := range t.alphabet {
			if n.gen >= 0 && gen.seq[0].Face == t.alphabet[n.gen].seq[0].Face {
				continue
			}
			out = append(out, searchNode{
				state:  Compose(n.state, gen.state),
				parent: idx,
				gen:    int8(gi),
			})
		}
	}
	return out
}

// reconstruct walks the parent chain back to the root and rebuilds
// the move product.
func reconstruct(t *solveTables, nodes []searchNode, idx int32) element {
	var rev []Move
	for idx >= 0 && nodes[idx].gen >= 0 {
		rev = append(rev, t.alphabet[nodes[idx].gen].seq...)
		idx = nodes[idx].parent
	}
	moves := make([]Move, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		moves = append(moves, rev[i])
	}
	return elem(moves...)
}
