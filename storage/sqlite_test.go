package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []Score{
		{RunID: "a", Level: 1, Score: 100, Won: true, Frames: 600},
		{RunID: "b", Level: 1, Score: 50},
		{RunID: "c", Level: 1, Score: 200, Won: true},
		{RunID: "d", Level: 3, Score: 500, Won: true},
	} {
		_, err := store.SaveScore(sc)
		require.NoError(t, err)
	}

	cases := []struct {
		name  string
		level int
		limit int
		want  []int
	}{
		{"level1", 1, 10, []int{200, 100, 50}},
		{"level1_limited", 1, 2, []int{200, 100}},
		{"all_levels", 0, 10, []int{500, 200, 100, 50}},
		{"empty_level", 2, 10, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scores, err := store.TopScores(c.level, c.limit)
			require.NoError(t, err)
			var got []int
			for _, sc := range scores {
				got = append(got, sc.Score)
			}
			assert.Equal(t, c.want, got)
		})
	}

	top, err := store.TopScores(1, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "c", top[0].RunID)
	assert.True(t, top[0].Won)
	assert.False(t, top[0].CreatedAt.IsZero())
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore(1)
	require.NoError(t, err)
	assert.Zero(t, hs)

	_, err = store.SaveScore(Score{RunID: "x", Level: 1, Score: 30})
	require.NoError(t, err)
	_, err = store.SaveScore(Score{RunID: "y", Level: 1, Score: 70})
	require.NoError(t, err)

	hs, err = store.HighScore(1)
	require.NoError(t, err)
	assert.Equal(t, 70, hs)
}

func TestStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.SaveScore(Score{RunID: "r", Level: 2, Score: 40})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	hs, err := store.HighScore(2)
	require.NoError(t, err)
	assert.Equal(t, 40, hs)
}
