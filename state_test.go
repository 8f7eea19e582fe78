package cubesolver

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Error("Solved() should report solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := Solved().Apply(R)
	if s.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestFourQuarterTurns_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		m := Move{Face: face, Turn: CW}
		s := Solved().Apply(m, m, m, m)
		if !s.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(s.String())
		}
	}
}

func TestDoubleTurnTwice_ReturnsToSolved(t *testing.T) {
	s := Solved().Apply(R2, R2)
	if !s.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(s.String())
	}
}

func TestMoveThenInverse_ReturnsToSolved(t *testing.T) {
	for m := range genStates {
		s := Solved().Apply(m, m.Inverse())
		if !s.IsSolved() {
			t.Errorf("%v %v should return to solved", m, m.Inverse())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	s := Solved()
	for i := 0; i < 6; i++ {
		s = s.Apply(SexyMove...)
	}
	if !s.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestComposeIdentity(t *testing.T) {
	s, _ := Scramble(rand.New(rand.NewPCG(7, 0)), 25)
	if Compose(s, Solved()) != s {
		t.Error("composing with identity on the right changed the state")
	}
	if Compose(Solved(), s) != s {
		t.Error("composing with identity on the left changed the state")
	}
}

func TestComposeAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	a, _ := Scramble(rng, 15)
	b, _ := Scramble(rng, 15)
	c, _ := Scramble(rng, 15)
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	if left != right {
		t.Error("composition is not associative")
		t.Logf("left:  %v", left)
		t.Logf("right: %v", right)
	}
}

func TestInverseCancels(t *testing.T) {
	s, _ := Scramble(rand.New(rand.NewPCG(13, 0)), 30)
	if !Compose(s, s.Inverse()).IsSolved() {
		t.Error("s * s^-1 should be solved")
	}
	if !Compose(s.Inverse(), s).IsSolved() {
		t.Error("s^-1 * s should be solved")
	}
}

func TestApplyNotationRoundTrip(t *testing.T) {
	notation := "R U R' U' F2 D B' L2 U'"
	s, err := Solved().ApplyNotation(notation)
	if err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	moves, _ := ParseMoves(notation)
	inv := make([]Move, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		inv = append(inv, moves[i].Inverse())
	}
	if !s.Apply(inv...).IsSolved() {
		t.Error("applying the inverted sequence should return to solved")
	}
}

func TestValidate_AcceptsReachableStates(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 0))
	for i := 0; i < 50; i++ {
		s, moves := Scramble(rng, 40)
		if err := s.Validate(); err != nil {
			t.Fatalf("scramble %s produced invalid state: %v", FormatMoves(moves), err)
		}
	}
}

func TestValidate_RejectsTwistedCorner(t *testing.T) {
	s := Solved()
	s.co[4] = 1
	if err := s.Validate(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("single twisted corner should be invalid, got %v", err)
	}
}

func TestValidate_RejectsFlippedEdge(t *testing.T) {
	s := Solved()
	s.eo[7] = 1
	if err := s.Validate(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("single flipped edge should be invalid, got %v", err)
	}
}

func TestValidate_RejectsParityMismatch(t *testing.T) {
	// A lone corner swap has odd corner parity and even edge parity.
	s := Solved()
	s.cp[0], s.cp[1] = s.cp[1], s.cp[0]
	if err := s.Validate(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("lone corner swap should be invalid, got %v", err)
	}
}

func TestValidate_RejectsNonBijection(t *testing.T) {
	s := Solved()
	s.cp[0] = 1 // cubie 1 now appears twice
	if err := s.Validate(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("duplicated corner cubie should be invalid, got %v", err)
	}
}

func TestNew_ValidatesInput(t *testing.T) {
	id := Solved()
	s, err := New(id.cp, id.co, id.ep, id.eo)
	if err != nil {
		t.Fatalf("New on solved arrays: %v", err)
	}
	if !s.IsSolved() {
		t.Error("New on solved arrays should produce the solved state")
	}

	bad := id.co
	bad[2] = 3
	if _, err := New(id.cp, bad, id.ep, id.eo); !errors.Is(err, ErrInvalidState) {
		t.Errorf("out of range twist should be rejected, got %v", err)
	}
}

func TestGeneratorsPreserveInvariants(t *testing.T) {
	for m, g := range genStates {
		twist := 0
		for _, o := range g.co {
			twist += int(o)
		}
		if twist%3 != 0 {
			t.Errorf("%v: corner twists sum to %d", m, twist)
		}
		flip := 0
		for _, o := range g.eo {
			flip += int(o)
		}
		if flip%2 != 0 {
			t.Errorf("%v: odd flip count", m)
		}
		if permParity(g.cp[:]) != permParity(g.ep[:]) {
			t.Errorf("%v: permutation parity mismatch", m)
		}
	}
}

func TestScrambleDeterministic(t *testing.T) {
	s1, m1 := Scramble(rand.New(rand.NewPCG(42, 0)), 20)
	s2, m2 := Scramble(rand.New(rand.NewPCG(42, 0)), 20)
	if s1 != s2 {
		t.Error("same seed should give the same scramble state")
	}
	if FormatMoves(m1) != FormatMoves(m2) {
		t.Error("same seed should give the same move sequence")
	}
}

func TestScrambleMatchesMoves(t *testing.T) {
	s, moves := Scramble(rand.New(rand.NewPCG(3, 9)), 35)
	if got := Solved().Apply(moves...); got != s {
		t.Error("returned state should equal applying the returned moves")
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Errorf("consecutive same-face moves at %d: %v %v", i, moves[i-1], moves[i])
		}
	}
}

func TestProgress(t *testing.T) {
	if p := Solved().Progress(); p != 1.0 {
		t.Errorf("solved progress = %v, want 1", p)
	}
	if p := Solved().Apply(R).Progress(); p >= 1.0 || p < 0 {
		t.Errorf("after R progress = %v, want within [0,1)", p)
	}
}
