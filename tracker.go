package cubesolver

import (
	"context"
	"math/rand/v2"
	"sync"
)

// Tracker wraps a State with a move history and stage progress
// detection. It is safe for concurrent use, so a single Tracker can
// back an interactive session fed from several goroutines.
type Tracker struct {
	mu            sync.Mutex
	state         State
	moves         []Move
	stageCallback func(name string)
	highest       int // highest consecutive prefix of done stages reached
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{state: Solved()}
}

// SetStageCallback sets a callback that fires when a stage of the
// reduction chain is newly completed. Stages count up from the front
// of the chain and never fire twice for the same session.
func (t *Tracker) SetStageCallback(cb func(name string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stageCallback = cb
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Solved()
	t.moves = nil
	t.highest = 0
}

// Apply applies a single move.
func (t *Tracker) Apply(m Move) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.apply(m)
}

// ApplyNotation parses a move sequence and applies it. On a parse
// error no moves are applied.
func (t *Tracker) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, m := range moves {
		if err := t.apply(m); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracker) apply(m Move) error {
	next, err := ApplyMove(t.state, m)
	if err != nil {
		return err
	}
	t.state = next
	t.moves = append(t.moves, m)
	t.checkStages()
	return nil
}

// checkStages fires the callback for each newly completed chain
// prefix. Progress is monotonic for callback purposes even when a
// later move breaks an earlier stage again.
func (t *Tracker) checkStages() {
	chain := Chain()
	done := 0
	for _, st := range chain {
		if !st.Done(t.state) {
			break
		}
		done++
	}
	for done > t.highest {
		t.highest++
		if t.stageCallback != nil {
			t.stageCallback(chain[t.highest-1].Name)
		}
	}
}

// Scramble applies a random quarter-turn sequence and returns it.
func (t *Tracker) Scramble(rng *rand.Rand, length int) []Move {
	_, moves := Scramble(rng, length)
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, m := range moves {
		t.state = Compose(t.state, generatorState(m))
		t.moves = append(t.moves, m)
	}
	t.checkStages()
	return moves
}

// Solve computes a solution for the current state without applying
// it.
func (t *Tracker) Solve(ctx context.Context) ([]Move, error) {
	return Solve(ctx, t.State())
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Moves returns a copy of the move history since the last Reset.
func (t *Tracker) Moves() []Move {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// Progress returns the share of cubies currently placed and
// oriented.
func (t *Tracker) Progress() float64 {
	return t.State().Progress()
}

// IsSolved reports whether the cube is currently solved.
func (t *Tracker) IsSolved() bool {
	return t.State().IsSolved()
}
