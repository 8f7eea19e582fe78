package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested solve does not exist.
var ErrNotFound = errors.New("storage: solve not found")

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Scramble   string
	Solution   string
	MoveCount  int
	DurationMs int64
	Source     string // "cli", "api" or "ws"
}

// Stats summarizes the solve history.
type Stats struct {
	Count         int
	AvgMoves      float64
	MinMoves      int
	MaxMoves      int
	AvgDurationMs float64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Save records a solve and returns its ID.
func (r *SolveRepository) Save(scramble, solution string, moveCount int, duration time.Duration, source string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, move_count, duration_ms, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), scramble, solution, moveCount, duration.Milliseconds(), source)
	if err != nil {
		return "", fmt.Errorf("failed to save solve: %w", err)
	}

	return id, nil
}

// Get returns a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, move_count, duration_ms, source
		FROM solves WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]*Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, move_count, duration_ms, source
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

// Stats aggregates the whole history.
func (r *SolveRepository) Stats() (*Stats, error) {
	row := r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(move_count), 0),
		       COALESCE(MIN(move_count), 0),
		       COALESCE(MAX(move_count), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM solves
	`)

	var st Stats
	if err := row.Scan(&st.Count, &st.AvgMoves, &st.MinMoves, &st.MaxMoves, &st.AvgDurationMs); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &st, nil
}

// Delete removes a solve by ID.
func (r *SolveRepository) Delete(solveID string) error {
	res, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	if err := row.Scan(&s.SolveID, &createdAt, &s.Scramble, &s.Solution, &s.MoveCount, &s.DurationMs, &s.Source); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	s.CreatedAt = t
	return &s, nil
}
