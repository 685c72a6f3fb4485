package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/talker"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "talker.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sample() []talker.Talker {
	return []talker.Talker{
		{ID: 1, Name: "Henrique Moraes", Age: 49, Talk: talker.Talk{WatchedAt: "23/10/2020", Rate: 5}},
		{ID: 3, Name: "Ricardo Xavier Filho", Age: 33, Talk: talker.Talk{WatchedAt: "23/10/2020", Rate: 5}},
		{ID: 2, Name: "Heloísa Albuquerque", Age: 67, Talk: talker.Talk{WatchedAt: "23/10/2020", Rate: 5}},
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []talker.Talker{}, got)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sample()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	// Insertion order is preserved even when ids are out of order.
	assert.Equal(t, sample(), got)
}

func TestStore_SaveReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sample()))
	replacement := []talker.Talker{
		{ID: 4, Name: "Ana Silva", Age: 20, Talk: talker.Talk{WatchedAt: "01/01/2024", Rate: 3}},
	}
	require.NoError(t, store.Save(ctx, replacement))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestStore_SaveEmptyClears(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sample()))
	require.NoError(t, store.Save(ctx, []talker.Talker{}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talker.db")
	ctx := context.Background()

	store, err := New(path, slog.Default())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sample()))
	require.NoError(t, store.Close())

	reopened, err := New(path, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}
