package cubesolver

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"r", R},
		{"u'", UPrime},
		{"F2'", F2},
		{" L ", L},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "2"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) should fail with ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMoves_RejectsWholeSequence(t *testing.T) {
	if _, err := ParseMoves("R U X U'"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("sequence with bad move should fail, got %v", err)
	}
}

func TestMoveNotationRoundTrip(t *testing.T) {
	for m := range genStates {
		got, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if got != m {
			t.Errorf("round trip of %v gave %v", m, got)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}
}

func TestFormatMoves(t *testing.T) {
	got := FormatMoves([]Move{R, UPrime, F2})
	if got != "R U' F2" {
		t.Errorf("FormatMoves = %q, want %q", got, "R U' F2")
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}
