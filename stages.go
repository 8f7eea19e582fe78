package cubesolver

import (
	"context"
	"errors"
	"fmt"
)

// Setup search depth bounds. Any pair of corner slots can be reached
// within five setup moves, and the four edge cyclers between them
// cover every slot pair within three.
const (
	cornerSetupDepth = 5
	edgeSetupDepth   = 3
)

// Stage is one link of the reduction chain. Each stage fixes one
// attribute of the state (corner positions, corner twists, edge
// positions, edge flips) using macros whose support avoids everything
// the earlier stages already fixed.
type Stage struct {
	Name string
	// Done reports whether the attribute this stage owns is solved.
	Done func(State) bool

	run func(ctx context.Context, t *solveTables, s State) (element, error)
}

// Chain returns the reduction stages in solving order. Running them
// in sequence takes any valid state to solved; running them out of
// order does not, because later stages assume the earlier attributes
// are already fixed.
func Chain() []Stage {
	return []Stage{
		{
			Name: "corner positions",
			Done: func(s State) bool { return s.cp == Solved().cp },
			run:  placeCorners,
		},
		{
			Name: "corner twists",
			Done: func(s State) bool { return s.co == [8]uint8{} },
			run:  twistCorners,
		},
		{
			Name: "edge positions",
			Done: func(s State) bool { return s.ep == Solved().ep },
			run:  placeEdges,
		},
		{
			Name: "edge flips",
			Done: func(s State) bool { return s.eo == [12]uint8{} },
			run:  flipEdges,
		},
	}
}

// placeCorners fixes corner slots in increasing order. For each
// misplaced slot i it finds the slot j still holding cubie i,
// conjugates the swap macro onto the pair and applies it. The
// conjugated macro is an exact transposition of slots i and j, so
// slots below i stay fixed.
func placeCorners(ctx context.Context, t *solveTables, s State) (element, error) {
	res := elem()
	for i := uint8(0); i < 8; i++ {
		if s.cp[i] == i {
			continue
		}
		j := i
		for k := i + 1; k < 8; k++ {
			if s.cp[k] == i {
				j = k
				break
			}
		}
		g, err := searchSetup(ctx, t, cornerKey, func(g State) bool {
			return (g.cp[i] == 1 && g.cp[j] == 3) || (g.cp[i] == 3 && g.cp[j] == 1)
		}, cornerSetupDepth)
		if err != nil {
			return element{}, fmt.Errorf("corner setup for slots %d,%d: %w", i, j, err)
		}
		c := conjugate(t.cornerSwap, g)
		s = Compose(s, c.state)
		res = mul(res, c)
	}
	return res, nil
}

// twistCorners fixes the twist of slots 1 through 7. Each conjugated
// twist macro adds one to the target slot and two to slot 0; slot 0
// needs no pass of its own since the twists always sum to 0 mod 3.
func twistCorners(ctx context.Context, t *solveTables, s State) (element, error) {
	res := elem()
	for i := uint8(1); i < 8; i++ {
		if s.co[i] == 0 {
			continue
		}
		g, err := searchSetup(ctx, t, cornerKey, func(g State) bool {
			return g.cp[0] == 0 && g.cp[i] == 2
		}, cornerSetupDepth)
		if err != nil {
			return element{}, fmt.Errorf("twist setup for slot %d: %w", i, err)
		}
		c := conjugate(t.cornerTwist, g)
		if s.co[i] == 1 {
			c = mul(c, c)
		}
		s = Compose(s, c.state)
		res = mul(res, c)
	}
	return res, nil
}

// placeEdges fixes edge slots 0 through 9 in increasing order. For
// each misplaced slot the four cyclers are tried in a fixed order:
// a setup must carry the cycler's first two support slots onto the
// pair being fixed while its third support slot stays above i. Slots
// 10 and 11 come out solved for free, since a two-edge swap would
// break permutation parity.
func placeEdges(ctx context.Context, t *solveTables, s State) (element, error) {
	res := elem()
	for i := uint8(0); i < 10; i++ {
		if s.ep[i] == i {
			continue
		}
		j := i
		for k := i + 1; k < 12; k++ {
			if s.ep[k] == i {
				j = k
				break
			}
		}

		var c element
		found := false
		for _, cyc := range t.edgeCyclers {
			sup := cyc.support
			g, err := searchSetup(ctx, t, edgeKey, func(g State) bool {
				if g.ep[i] != sup[0] || g.ep[j] != sup[1] {
					return false
				}
				for k := i + 1; k < 12; k++ {
					if g.ep[k] == sup[2] {
						return true
					}
				}
				return false
			}, edgeSetupDepth)
			if errors.Is(err, ErrStageExhausted) {
				continue
			}
			if err != nil {
				return element{}, err
			}
			c = conjugate(cyc.macro, g)
			found = true
			break
		}
		if !found {
			return element{}, fmt.Errorf("%w: no edge cycler reaches slots %d,%d", ErrStageExhausted, i, j)
		}
		s = Compose(s, c.state)
		res = mul(res, c)
	}
	return res, nil
}

// flipEdges fixes the flip of slots 1 through 11. The conjugated flip
// macro flips the target slot together with slot 0; slot 0 ends up
// correct on its own because the flips always sum to 0 mod 2.
func flipEdges(ctx context.Context, t *solveTables, s State) (element, error) {
	res := elem()
	for i := uint8(1); i < 12; i++ {
		if s.eo[i] == 0 {
			continue
		}
		g, err := searchSetup(ctx, t, edgeKey, func(g State) bool {
			return g.ep[0] == 0 && g.ep[i] == 3
		}, edgeSetupDepth)
		if err != nil {
			return element{}, fmt.Errorf("flip setup for slot %d: %w", i, err)
		}
		c := conjugate(t.edgeFlip, g)
		s = Compose(s, c.state)
		res = mul(res, c)
	}
	return res, nil
}
