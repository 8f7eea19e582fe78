package cube

import (
	"math/rand/v2"
	"testing"

	"github.com/SeamusWaldron/cubesolver"
)

func TestNewIsSolved(t *testing.T) {
	if !New().IsSolved() {
		t.Error("new cube should be solved")
	}
}

func TestFourTurnsReturnToSolved(t *testing.T) {
	for face := Face(0); face < 6; face++ {
		c := New()
		for i := 0; i < 4; i++ {
			c.Move(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("%d x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestCCWUndoesCW(t *testing.T) {
	for face := Face(0); face < 6; face++ {
		c := New()
		c.Move(face, 1)
		c.Move(face, -1)
		if !c.IsSolved() {
			t.Errorf("face %d: CW then CCW should return to solved", face)
		}
	}
}

func TestHalfTurnTwiceReturnsToSolved(t *testing.T) {
	c := New()
	c.Move(R, 2)
	c.Move(R, 2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
	}
}

func TestCentersNeverMove(t *testing.T) {
	c := New()
	moves, err := cubesolver.ParseMoves("R U F' D2 L B' U' R2")
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(moves)
	for face := Face(0); face < 6; face++ {
		if c.Facelets[face][4] != solvedColor(face) {
			t.Errorf("center of face %d moved", face)
		}
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(cubesolver.SexyMove)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

// The facelet model and the cubie model are independent encodings of
// the same group, so a sequence solves one exactly when it solves the
// other.
func TestAgreesWithCubieModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 7))
	for trial := 0; trial < 30; trial++ {
		state, moves := cubesolver.Scramble(rng, 25)
		c := New()
		c.ApplyMoves(moves)
		if c.IsSolved() != state.IsSolved() {
			t.Fatalf("models disagree after %s", cubesolver.FormatMoves(moves))
		}

		inv := make([]cubesolver.Move, 0, len(moves))
		for i := len(moves) - 1; i >= 0; i-- {
			inv = append(inv, moves[i].Inverse())
		}
		c.ApplyMoves(inv)
		if !c.IsSolved() {
			t.Fatalf("inverting %s did not solve the facelet cube", cubesolver.FormatMoves(moves))
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	c.Move(R, 1)
	if !clone.IsSolved() {
		t.Error("mutating the original should not affect the clone")
	}
}
