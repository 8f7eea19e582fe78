package cubesolver

import (
	"context"
	"math/rand/v2"
	"testing"
)

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("new tracker should start solved")
	}
	if len(tr.Moves()) != 0 {
		t.Error("new tracker should have an empty history")
	}
}

func TestTrackerApplyAndReset(t *testing.T) {
	tr := NewTracker()
	if err := tr.Apply(R); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tr.IsSolved() {
		t.Error("tracker should not be solved after R")
	}
	if len(tr.Moves()) != 1 {
		t.Errorf("history has %d moves, want 1", len(tr.Moves()))
	}
	tr.Reset()
	if !tr.IsSolved() || len(tr.Moves()) != 0 {
		t.Error("Reset should restore a solved cube with empty history")
	}
}

func TestTrackerApplyNotation(t *testing.T) {
	tr := NewTracker()
	if err := tr.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	if len(tr.Moves()) != 4 {
		t.Errorf("history has %d moves, want 4", len(tr.Moves()))
	}
	if err := tr.ApplyNotation("R X"); err == nil {
		t.Error("invalid notation should fail")
	}
}

func TestTrackerScrambleThenSolve(t *testing.T) {
	tr := NewTracker()
	scramble := tr.Scramble(rand.New(rand.NewPCG(21, 0)), 30)
	if len(scramble) != 30 {
		t.Fatalf("scramble returned %d moves, want 30", len(scramble))
	}
	solution, err := tr.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, m := range solution {
		if err := tr.Apply(m); err != nil {
			t.Fatalf("applying solution move %v: %v", m, err)
		}
	}
	if !tr.IsSolved() {
		t.Error("tracker should be solved after applying the solution")
	}
}

func TestTrackerStageCallback(t *testing.T) {
	tr := NewTracker()
	var fired []string
	tr.SetStageCallback(func(name string) {
		fired = append(fired, name)
	})

	if err := tr.Apply(R); err != nil {
		t.Fatal(err)
	}
	if err := tr.Apply(RPrime); err != nil {
		t.Fatal(err)
	}
	if len(fired) != 4 {
		t.Fatalf("returning to solved should complete all 4 stages, fired %v", fired)
	}
	if fired[0] != "corner positions" || fired[3] != "edge flips" {
		t.Errorf("stages fired out of order: %v", fired)
	}
}

func TestTrackerConcurrentApply(t *testing.T) {
	tr := NewTracker()
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				if err := tr.Apply(R); err != nil {
					t.Errorf("Apply: %v", err)
					return
				}
			}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}
	if len(tr.Moves()) != 400 {
		t.Errorf("history has %d moves, want 400", len(tr.Moves()))
	}
	if !tr.IsSolved() {
		t.Error("400 R moves should leave the cube solved")
	}
}
