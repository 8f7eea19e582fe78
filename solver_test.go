package cubesolver

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSolve_SolvedCubeNeedsNoMoves(t *testing.T) {
	moves, err := Solve(context.Background(), Solved())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("solved cube should need no moves, got %v", FormatMoves(moves))
	}
}

func TestSolve_SingleMove(t *testing.T) {
	s := Solved().Apply(R)
	moves, err := Solve(context.Background(), s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !s.Apply(moves...).IsSolved() {
		t.Error("applying the solution should solve the cube")
	}
}

func TestSolve_SexyCycleIsIdentity(t *testing.T) {
	s := Solved()
	for i := 0; i < 6; i++ {
		s = s.Apply(SexyMove...)
	}
	moves, err := Solve(context.Background(), s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("identity state should need no moves, got %d", len(moves))
	}
}

func TestSolve_RandomScrambles(t *testing.T) {
	rng := rand.New(rand.NewPCG(2026, 8))
	for i := 0; i < 10; i++ {
		s, scramble := Scramble(rng, 40)
		moves, err := Solve(context.Background(), s)
		if err != nil {
			t.Fatalf("scramble %s: %v", FormatMoves(scramble), err)
		}
		if !s.Apply(moves...).IsSolved() {
			t.Errorf("scramble %s: solution does not solve", FormatMoves(scramble))
		}
	}
}

func TestSolve_OutputIsQuarterTurnsOnly(t *testing.T) {
	s, _ := Scramble(rand.New(rand.NewPCG(1, 1)), 30)
	moves, err := Solve(context.Background(), s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, m := range moves {
		if m.Turn != CW && m.Turn != CCW {
			t.Errorf("solution contains non quarter turn %v", m)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	s, _ := Scramble(rand.New(rand.NewPCG(5, 5)), 30)
	a, err := Solve(context.Background(), s)
	if err != nil {
		t.Fatalf("first solve: %v", err)
	}
	b, err := Solve(context.Background(), s)
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("solving the same state twice gave different solutions")
	}
}

func TestSolve_RejectsInvalidState(t *testing.T) {
	s := Solved()
	s.co[3] = 1
	if _, err := Solve(context.Background(), s); !errors.Is(err, ErrInvalidState) {
		t.Errorf("twisted corner should be rejected, got %v", err)
	}
}

func TestSolve_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := Scramble(rand.New(rand.NewPCG(9, 9)), 30)
	if _, err := Solve(ctx, s); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled solve should return context.Canceled, got %v", err)
	}
}

func TestSolveNotation(t *testing.T) {
	s := Solved().Apply(F, U)
	notation, err := SolveNotation(context.Background(), s)
	if err != nil {
		t.Fatalf("SolveNotation: %v", err)
	}
	moves, err := ParseMoves(notation)
	if err != nil {
		t.Fatalf("solution %q does not parse: %v", notation, err)
	}
	if !s.Apply(moves...).IsSolved() {
		t.Error("parsed solution should solve the cube")
	}
}

func TestChainStagesInOrder(t *testing.T) {
	chain := Chain()
	if len(chain) != 4 {
		t.Fatalf("chain has %d stages, want 4", len(chain))
	}
	for _, st := range chain {
		if !st.Done(Solved()) {
			t.Errorf("stage %q should be done on the solved state", st.Name)
		}
	}
	s := Solved().Apply(R)
	if chain[0].Done(s) {
		t.Error("corner position stage should be broken after R")
	}
}
