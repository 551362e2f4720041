package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBolt_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	store, err := New(filepath.Join(t.TempDir(), "cinetech.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "watchlist")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, "watchlist", `[{"id":10}]`))

	value, err := store.Get(ctx, "watchlist")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":10}]`, value)

	require.NoError(t, store.Remove(ctx, "watchlist"))
	_, err = store.Get(ctx, "watchlist")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Remove(ctx, "watchlist"))
}

func TestBolt_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cinetech.db")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "search_history", `["batman"]`))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "search_history")
	require.NoError(t, err)
	assert.Equal(t, `["batman"]`, value)
}
