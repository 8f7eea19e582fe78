package cubesolver

import (
	"fmt"
	"sync"
)

// element pairs a state with the move sequence that produces it, so
// every algebraic manipulation of a macro keeps a replayable move
// list alongside it.
type element struct {
	state State
	seq   []Move
}

func elem(moves ...Move) element {
	return element{state: Solved().Apply(moves...), seq: moves}
}

func parseElem(notation string) (element, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return element{}, err
	}
	return elem(moves...), nil
}

// mul applies a then b.
func mul(a, b element) element {
	seq := make([]Move, 0, len(a.seq)+len(b.seq))
	seq = append(seq, a.seq...)
	seq = append(seq, b.seq...)
	return element{state: Compose(a.state, b.state), seq: seq}
}

func pow(a element, n int) element {
	r := elem()
	for i := 0; i < n; i++ {
		r = mul(r, a)
	}
	return r
}

func inverse(a element) element {
	seq := make([]Move, len(a.seq))
	for i, m := range a.seq {
		seq[len(a.seq)-1-i] = m.Inverse()
	}
	return element{state: a.state.Inverse(), seq: seq}
}

// conjugate moves the effect of macro m to wherever the setup g sends
// its support: the result performs g inverted, then m, then g.
func conjugate(m, g element) element {
	return mul(mul(inverse(g), m), g)
}

// edgeCycler is a macro cycling three edge cubies while leaving every
// corner untouched. support lists the cycled slots: the cubie in
// support[1] moves to support[0], support[2] to support[1] and
// support[0] to support[2].
type edgeCycler struct {
	macro   element
	support [3]uint8
}

// solveTables holds the precomputed machinery shared by all solves:
// the search alphabet and the four families of commutator macros the
// stage chain conjugates into place.
type solveTables struct {
	// alphabet is the 18-move search vocabulary for setup moves,
	// grouped by face so the search can prune same-face runs.
	alphabet []element

	cornerSwap  element // transposes the cubies in corner slots 1 and 3
	cornerTwist element // twists corner slot 0 by 2 and slot 2 by 1
	edgeCyclers []edgeCycler
	edgeFlip    element // flips the edges in slots 0 and 3
}

var (
	tablesOnce sync.Once
	tablesVal  *solveTables
	tablesErr  error
)

// tables returns the shared macro tables, building and verifying them
// on first use. A verification failure is permanent and reported as
// ErrChainDefect on every call.
func tables() (*solveTables, error) {
	tablesOnce.Do(func() {
		tablesVal, tablesErr = buildTables()
	})
	return tablesVal, tablesErr
}

func buildTables() (*solveTables, error) {
	t := &solveTables{}

	for _, face := range Faces {
		for _, turn := range []Turn{CW, Double, CCW} {
			m := Move{Face: face, Turn: turn}
			t.alphabet = append(t.alphabet, elem(m))
		}
	}

	t.cornerSwap = pow(elem(U, L, UPrime, LPrime, F), 3)
	t.cornerTwist = mul(pow(elem(LPrime, F), 3), pow(elem(L, FPrime), 3))

	cyclers := []struct {
		notation string
		support  [3]uint8
	}{
		{"B F' L2 B' F U2", [3]uint8{0, 3, 11}},
		{"L R' U2 L' R B2", [3]uint8{5, 6, 7}},
		{"L R' F2 L' R U2", [3]uint8{4, 6, 7}},
		{"U D' R2 U' D B2", [3]uint8{2, 9, 10}},
	}
	for _, c := range cyclers {
		m, err := parseElem(c.notation)
		if err != nil {
			return nil, err
		}
		t.edgeCyclers = append(t.edgeCyclers, edgeCycler{macro: m, support: c.support})
	}

	flip, err := parseElem("L L B F' D B F' R B F' U U F B' R F B' D F B'")
	if err != nil {
		return nil, err
	}
	t.edgeFlip = flip

	if err := t.verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// verify checks every macro against the exact action the stage chain
// relies on. The stages conjugate these macros blindly, so a macro
// with the wrong support would corrupt work done by earlier stages
// instead of failing loudly.
func (t *solveTables) verify() error {
	s := t.cornerSwap.state
	for i := uint8(0); i < 8; i++ {
		want := i
		switch i {
		case 1:
			want = 3
		case 3:
			want = 1
		}
		if s.cp[i] != want {
			return fmt.Errorf("%w: corner swap macro moves slot %d", ErrChainDefect, i)
		}
	}

	s = t.cornerTwist.state
	for i := uint8(0); i < 8; i++ {
		if s.cp[i] != i {
			return fmt.Errorf("%w: corner twist macro permutes corners", ErrChainDefect)
		}
		var want uint8
		switch i {
		case 0:
			want = 2
		case 2:
			want = 1
		}
		if s.co[i] != want {
			return fmt.Errorf("%w: corner twist macro has wrong twist at slot %d", ErrChainDefect, i)
		}
	}

	for ci, c := range t.edgeCyclers {
		s = c.macro.state
		for i := uint8(0); i < 8; i++ {
			if s.cp[i] != i || s.co[i] != 0 {
				return fmt.Errorf("%w: edge cycler %d touches corners", ErrChainDefect, ci)
			}
		}
		want := [12]uint8{}
		for i := range want {
			want[i] = uint8(i)
		}
		want[c.support[0]] = c.support[1]
		want[c.support[1]] = c.support[2]
		want[c.support[2]] = c.support[0]
		if s.ep != want {
			return fmt.Errorf("%w: edge cycler %d has wrong cycle", ErrChainDefect, ci)
		}
	}

	s = t.edgeFlip.state
	if s.cp != Solved().cp || s.co != Solved().co || s.ep != Solved().ep {
		return fmt.Errorf("%w: edge flip macro is not position pure", ErrChainDefect)
	}
	for i := uint8(0); i < 12; i++ {
		var want uint8
		if i == 0 || i == 3 {
			want = 1
		}
		if s.eo[i] != want {
			return fmt.Errorf("%w: edge flip macro has wrong flip at slot %d", ErrChainDefect, i)
		}
	}
	return nil
}
