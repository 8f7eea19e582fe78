package cubesolver

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// State is the cubie-level model of a 3x3x3 cube. Each of the 20
// moving pieces is tracked by where it sits and how it is oriented:
//
//   - cp[i] is the corner cubie occupying corner slot i
//   - co[i] is the twist (0, 1 or 2) of the cubie in corner slot i
//   - ep[i] is the edge cubie occupying edge slot i
//   - eo[i] is the flip (0 or 1) of the cubie in edge slot i
//
// Corner slots are numbered 0-7 and edge slots 0-11; a cubie's number
// is the slot it occupies when the cube is solved. The zero value of
// State is NOT the solved cube; use Solved.
//
// On a solved cube cp and ep are identities and all orientations are
// zero. States form a group under Compose, and every reachable state
// satisfies three constraints: the twists sum to 0 mod 3, the flips
// sum to 0 mod 2, and the two permutations have equal parity. New
// checks all of them.
type State struct {
	cp [8]uint8
	co [8]uint8
	ep [12]uint8
	eo [12]uint8
}

// Solved returns the identity state.
func Solved() State {
	var s State
	for i := range s.cp {
		s.cp[i] = uint8(i)
	}
	for i := range s.ep {
		s.ep[i] = uint8(i)
	}
	return s
}

// New builds a State from explicit slot-indexed arrays and validates
// it. cp and ep must be permutations of 0-7 and 0-11, co entries must
// be below 3 and eo entries below 2, and the assembled state must lie
// in the reachable group. Returns ErrInvalidState otherwise.
func New(cp [8]uint8, co [8]uint8, ep [12]uint8, eo [12]uint8) (State, error) {
	s := State{cp: cp, co: co, ep: ep, eo: eo}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Validate checks that the state is well formed and reachable by face
// turns from the solved cube. A state assembled from a physically
// disassembled cube fails here when a single corner is twisted, a
// single edge is flipped, or exactly two pieces are swapped.
func (s State) Validate() error {
	var cSeen [8]bool
	for i, c := range s.cp {
		if c >= 8 || cSeen[c] {
			return fmt.Errorf("%w: corner permutation is not a bijection (slot %d)", ErrInvalidState, i)
		}
		cSeen[c] = true
	}
	var eSeen [12]bool
	for i, e := range s.ep {
		if e >= 12 || eSeen[e] {
			return fmt.Errorf("%w: edge permutation is not a bijection (slot %d)", ErrInvalidState, i)
		}
		eSeen[e] = true
	}

	twist := 0
	for i, o := range s.co {
		if o >= 3 {
			return fmt.Errorf("%w: corner twist out of range (slot %d)", ErrInvalidState, i)
		}
		twist += int(o)
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: corner twists sum to %d mod 3", ErrInvalidState, twist%3)
	}

	flip := 0
	for i, o := range s.eo {
		if o >= 2 {
			return fmt.Errorf("%w: edge flip out of range (slot %d)", ErrInvalidState, i)
		}
		flip += int(o)
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: odd number of flipped edges", ErrInvalidState)
	}

	if permParity(s.cp[:]) != permParity(s.ep[:]) {
		return fmt.Errorf("%w: corner and edge permutation parity differ", ErrInvalidState)
	}
	return nil
}

// permParity returns 0 for an even permutation and 1 for an odd one.
func permParity(p []uint8) int {
	inv := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	return inv & 1
}

// Compose returns the state reached by performing a's move sequence
// and then b's, starting from solved. Composition is associative but
// not commutative, and Solved is the identity on both sides.
func Compose(a, b State) State {
	var c State
	for i := 0; i < 8; i++ {
		c.cp[i] = a.cp[b.cp[i]]
		c.co[i] = (a.co[b.cp[i]] + b.co[i]) % 3
	}
	for i := 0; i < 12; i++ {
		c.ep[i] = a.ep[b.ep[i]]
		c.eo[i] = (a.eo[b.ep[i]] + b.eo[i]) % 2
	}
	return c
}

// Inverse returns the state that undoes s: Compose(s, s.Inverse())
// and Compose(s.Inverse(), s) are both Solved.
func (s State) Inverse() State {
	var inv State
	for i := 0; i < 8; i++ {
		inv.cp[s.cp[i]] = uint8(i)
		inv.co[s.cp[i]] = (3 - s.co[i]) % 3
	}
	for i := 0; i < 12; i++ {
		inv.ep[s.ep[i]] = uint8(i)
		inv.eo[s.ep[i]] = s.eo[i]
	}
	return inv
}

// Apply returns the state after performing the given moves in order.
func (s State) Apply(moves ...Move) State {
	for _, m := range moves {
		s = Compose(s, generatorState(m))
	}
	return s
}

// ApplyMove applies a single parsed move to s. The move is validated,
// so this is the safe entry point for externally supplied moves;
// Apply panics on moves that never came from ParseMove or the
// predefined set.
func ApplyMove(s State, m Move) (State, error) {
	g, ok := genStates[m]
	if !ok {
		return State{}, fmt.Errorf("%w: %q with turn %d", ErrInvalidNotation, m.Face, m.Turn)
	}
	return Compose(s, g), nil
}

// ApplyNotation parses a whitespace-separated move sequence and
// applies it.
func (s State) ApplyNotation(notation string) (State, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return State{}, err
	}
	return s.Apply(moves...), nil
}

// IsSolved reports whether the state is the identity.
func (s State) IsSolved() bool {
	return s == Solved()
}

// Progress returns a rough completion fraction between 0 and 1: the
// share of the 20 cubies that are in their home slot with the correct
// orientation. Useful for display, not for search.
func (s State) Progress() float64 {
	placed := 0
	for i := 0; i < 8; i++ {
		if s.cp[i] == uint8(i) && s.co[i] == 0 {
			placed++
		}
	}
	for i := 0; i < 12; i++ {
		if s.ep[i] == uint8(i) && s.eo[i] == 0 {
			placed++
		}
	}
	return float64(placed) / 20.0
}

// String renders the four attribute arrays, mostly for test failures
// and debug logs.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("cp=")
	writeSlots(&b, s.cp[:])
	b.WriteString(" co=")
	writeSlots(&b, s.co[:])
	b.WriteString(" ep=")
	writeSlots(&b, s.ep[:])
	b.WriteString(" eo=")
	writeSlots(&b, s.eo[:])
	return b.String()
}

func writeSlots(b *strings.Builder, slots []uint8) {
	b.WriteByte('[')
	for i, v := range slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%d", v)
	}
	b.WriteByte(']')
}

// Scramble returns a random state together with the quarter-turn
// sequence that produces it from solved. Consecutive turns of the
// same face are suppressed so the sequence does not trivially cancel.
// The same rng yields the same scramble.
func Scramble(rng *rand.Rand, length int) (State, []Move) {
	s := Solved()
	moves := make([]Move, 0, length)
	prev := Face("")
	for len(moves) < length {
		m := QuarterTurns[rng.IntN(len(QuarterTurns))]
		if m.Face == prev {
			continue
		}
		prev = m.Face
		moves = append(moves, m)
		s = s.Apply(m)
	}
	return s, moves
}
