package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='solves'
	`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestSaveAndGet(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Save("R U R' U'", "U R U' R'", 4, 120*time.Millisecond, "cli")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", s.Scramble)
	assert.Equal(t, "U R U' R'", s.Solution)
	assert.Equal(t, 4, s.MoveCount)
	assert.Equal(t, int64(120), s.DurationMs)
	assert.Equal(t, "cli", s.Source)
	assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt, time.Minute)
}

func TestGetMissing(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	_, err := repo.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	for i := 0; i < 3; i++ {
		_, err := repo.Save("R", "R'", 1, time.Millisecond, "cli")
		require.NoError(t, err)
	}

	solves, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, solves, 2)
	assert.True(t, !solves[0].CreatedAt.Before(solves[1].CreatedAt))
}

func TestStats(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	st, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Count)

	_, err = repo.Save("R U", "U' R'", 2, 10*time.Millisecond, "cli")
	require.NoError(t, err)
	_, err = repo.Save("R U F D", "D' F' U' R'", 4, 30*time.Millisecond, "api")
	require.NoError(t, err)

	st, err = repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 2, st.MinMoves)
	assert.Equal(t, 4, st.MaxMoves)
	assert.InDelta(t, 3.0, st.AvgMoves, 0.001)
}

func TestDelete(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Save("R", "R'", 1, time.Millisecond, "cli")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(id))
	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)
}
