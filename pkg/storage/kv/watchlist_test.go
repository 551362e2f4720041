package kv

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlist_AddDefaultsToToWatch(t *testing.T) {
	ctx := context.Background()
	watchlist := NewWatchlist(mem.New())

	items, err := watchlist.Add(ctx, storage.MediaRef{ID: 10, Title: "Perfect Blue", PosterPath: "/pb.jpg"}, storage.MediaTypeMovie)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, storage.WatchStatusToWatch, items[0].Status)
}

func TestWatchlist_StatusRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := mem.New()
	watchlist := NewWatchlist(adapter)

	added, err := watchlist.Add(ctx, storage.MediaRef{ID: 10, Title: "Perfect Blue", PosterPath: "/pb.jpg"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	_, err = watchlist.UpdateStatus(ctx, 10, storage.WatchStatusWatching)
	require.NoError(t, err)

	reloaded := NewWatchlist(adapter)
	items, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, storage.WatchStatusWatching, items[0].Status)

	// every other field stays untouched
	want := added[0]
	want.Status = storage.WatchStatusWatching
	assert.Equal(t, want, items[0])
}

func TestWatchlist_UpdateStatusOnlyTouchesMatch(t *testing.T) {
	ctx := context.Background()
	watchlist := NewWatchlist(mem.New())

	_, err := watchlist.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)
	_, err = watchlist.Add(ctx, storage.MediaRef{ID: 2, Title: "Deux"}, storage.MediaTypeSeries)
	require.NoError(t, err)

	items, err := watchlist.UpdateStatus(ctx, 2, storage.WatchStatusWatched)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, storage.WatchStatusToWatch, items[0].Status)
	assert.Equal(t, storage.WatchStatusWatched, items[1].Status)
}

func TestWatchlist_UnknownStatusStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	watchlist := NewWatchlist(mem.New())

	_, err := watchlist.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	items, err := watchlist.UpdateStatus(ctx, 1, storage.WatchStatus("bingeing"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, storage.WatchStatus("bingeing"), items[0].Status)

	// rendering falls back to the to-watch label
	assert.Equal(t, "À regarder", items[0].Status.Label())
}

func TestWatchlist_RemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	watchlist := NewWatchlist(mem.New())

	items, err := watchlist.Remove(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = watchlist.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	items, err = watchlist.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWatchlist_IsListed(t *testing.T) {
	ctx := context.Background()
	watchlist := NewWatchlist(mem.New())

	ok, err := watchlist.IsListed(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = watchlist.Add(ctx, storage.MediaRef{ID: 1, Title: "Un"}, storage.MediaTypeMovie)
	require.NoError(t, err)

	ok, err = watchlist.IsListed(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
