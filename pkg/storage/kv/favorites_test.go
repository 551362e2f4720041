package kv

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_AddAndList(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(mem.New())

	items, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = favorites.Add(ctx, storage.MediaRef{ID: 42, Title: "Le Voyage de Chihiro", PosterPath: "/chihiro.jpg"}, storage.MediaTypeMovie)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].ID)
	assert.Equal(t, storage.MediaTypeMovie, items[0].Type)
	assert.Equal(t, "Le Voyage de Chihiro", items[0].Title)
	assert.Equal(t, "/chihiro.jpg", items[0].PosterPath)
	assert.NotZero(t, items[0].AddedAt)
	assert.Empty(t, items[0].Status)

	items, err = favorites.Add(ctx, storage.MediaRef{ID: 7, Title: "Dark"}, storage.MediaTypeSeries)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// insertion order, no re-sorting
	assert.Equal(t, int64(42), items[0].ID)
	assert.Equal(t, int64(7), items[1].ID)
}

func TestFavorites_RoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()

	first := NewFavorites(adapter)
	added, err := first.Add(ctx, storage.MediaRef{ID: 42, Title: "Le Voyage de Chihiro", PosterPath: "/chihiro.jpg"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	// a fresh store over the same adapter simulates a restart
	reloaded := NewFavorites(adapter)
	items, err := reloaded.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, added, items)
}

func TestFavorites_Remove(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(mem.New())

	_, err := favorites.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)
	_, err = favorites.Add(ctx, storage.MediaRef{ID: 2, Title: "Deux"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	items, err := favorites.Remove(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)

	t.Run("absent id is a no-op", func(t *testing.T) {
		items, err := favorites.Remove(ctx, 999)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].ID)
	})
}

func TestFavorites_IsFavorite(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(mem.New())

	ok, err := favorites.IsFavorite(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = favorites.Add(ctx, storage.MediaRef{ID: 42, Title: "Le Voyage de Chihiro"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	ok, err = favorites.IsFavorite(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFavorites_MalformedPayload(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	require.NoError(t, adapter.Set(ctx, storage.KeyFavorites, "{not json"))

	favorites := NewFavorites(adapter)
	items, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// the store recovers by overwriting the corrupted payload
	items, err = favorites.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
