package cubesolver

import (
	"context"
	"fmt"
)

// Solve returns a move sequence that brings s to the solved state.
// The solution uses only the twelve quarter turns and applying it
// with Apply yields a state for which IsSolved is true. Solving the
// solved state returns an empty sequence. Solutions are long, a few
// hundred moves for a well scrambled cube, but finding them is fast
// and fully deterministic.
//
// Returns ErrInvalidState when s is not reachable by face turns, and
// respects ctx cancellation.
func Solve(ctx context.Context, s State) ([]Move, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	t, err := tables()
	if err != nil {
		return nil, err
	}

	solution := []Move{}
	for _, st := range Chain() {
		el, err := st.run(ctx, t, s)
		if err != nil {
			return nil, fmt.Errorf("solving %s: %w", st.Name, err)
		}
		s = Compose(s, el.state)
		if !st.Done(s) {
			return nil, fmt.Errorf("%w: %s stage left work behind", ErrChainDefect, st.Name)
		}
		solution = append(solution, el.seq...)
	}
	if !s.IsSolved() {
		return nil, fmt.Errorf("%w: chain finished on an unsolved state", ErrChainDefect)
	}
	return expandDoubles(solution), nil
}

// SolveNotation solves s and renders the solution in standard
// notation.
func SolveNotation(ctx context.Context, s State) (string, error) {
	moves, err := Solve(ctx, s)
	if err != nil {
		return "", err
	}
	return FormatMoves(moves), nil
}

// expandDoubles rewrites every half turn as two clockwise quarter
// turns so the solution stays within the public quarter-turn
// vocabulary.
func expandDoubles(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.Turn == Double {
			cw := Move{Face: m.Face, Turn: CW}
			out = append(out, cw, cw)
			continue
		}
		out = append(out, m)
	}
	return out
}
