package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: uuid.New().String(), Name: "Chill", URL: "https://example.com/1", Success: true, Files: 12, StartedAt: base, FinishedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New().String(), Name: "Workout", URL: "https://example.com/2", Success: false, Files: 0, StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, store.Record(e))
	}

	got, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first
	require.Equal(t, "Workout", got[0].Name)
	require.False(t, got[0].Success)
	require.Equal(t, "Chill", got[1].Name)
	require.True(t, got[1].Success)
	require.Equal(t, 12, got[1].Files)
	require.Equal(t, entries[0].FinishedAt.Unix(), got[1].FinishedAt.Unix())
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(Entry{
			ID:         uuid.New().String(),
			Name:       "Mix",
			URL:        "https://example.com",
			StartedAt:  base,
			FinishedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestStoreEmptyRecent(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Recent(10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(Entry{
		ID: uuid.New().String(), Name: "Persisted", URL: "https://example.com",
		StartedAt: time.Now(), FinishedAt: time.Now(),
	}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Recent(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Persisted", got[0].Name)
}
