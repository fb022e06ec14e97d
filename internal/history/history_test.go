package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	benford "github.com/maxgfr/benford-law"
	"github.com/maxgfr/benford-law/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func analyzed(t *testing.T, source string, numbers []float64) *report.Result {
	t.Helper()

	rep, err := benford.Analyze(numbers)
	require.NoError(t, err)
	return &report.Result{Source: source, Reference: benford.StandardBenford(), Report: rep}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	result := analyzed(t, "ledger.csv", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	id, err := store.Save(ctx, result)
	require.NoError(t, err)
	assert.Positive(t, id)

	entry, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, "ledger.csv", entry.Source)
	assert.Equal(t, 9, entry.SampleSize)
	assert.Equal(t, 0.01, entry.Threshold)
	assert.False(t, entry.Conformant)
	assert.WithinDuration(t, time.Now(), entry.CreatedAt, time.Minute)

	require.NotNil(t, entry.Result)
	assert.Equal(t, result.Report, entry.Result.Report)
	assert.Equal(t, result.Reference, entry.Result.Reference)
}

func TestGet_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	entries, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, source := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := store.Save(ctx, analyzed(t, source, []float64{1, 1, 2}))
		require.NoError(t, err)
	}

	entries, err = store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c.txt", entries[0].Source, "newest first")
	assert.Equal(t, "a.txt", entries[2].Source)
	assert.Nil(t, entries[0].Result)

	entries, err = store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	id, err := store.Save(ctx, analyzed(t, "kept.txt", []float64{3}))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	entry, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "kept.txt", entry.Source)
}
