package manager

import (
	"context"
	"testing"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/storage/kv"
	"github.com/Sofiane224434/cinetech/pkg/storage/mem"
	"github.com/Sofiane224434/cinetech/pkg/tmdb"
	"github.com/Sofiane224434/cinetech/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T) (CatalogManager, *mocks.MockClientInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	return New(client, kv.NewCollections(mem.New(), 5)), client
}

func TestCatalogManager_PopularMovies(t *testing.T) {
	ctx := context.Background()
	m, client := newTestManager(t)

	client.EXPECT().
		PopularMovies(gomock.Any(), 1).
		Return(&tmdb.Page[tmdb.Movie]{Page: 1, Results: []tmdb.Movie{{ID: 129, Title: "Le Voyage de Chihiro"}}}, nil)

	page, err := m.PopularMovies(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(129), page.Results[0].ID)
}

func TestCatalogManager_AddFavorite(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	req := AddItemRequest{ID: 129, Type: storage.MediaTypeMovie, Title: "Le Voyage de Chihiro", PosterPath: "/chihiro.jpg"}

	items, err := m.AddFavorite(ctx, req)
	require.NoError(t, err)
	require.Len(t, items, 1)

	t.Run("double add leaves the list unchanged", func(t *testing.T) {
		items, err := m.AddFavorite(ctx, req)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		_, err := m.AddFavorite(ctx, AddItemRequest{ID: 1, Type: storage.MediaTypeMovie})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown media type is rejected", func(t *testing.T) {
		_, err := m.AddFavorite(ctx, AddItemRequest{ID: 1, Type: "podcast", Title: "Un"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestCatalogManager_Watchlist(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	req := AddItemRequest{ID: 70523, Type: storage.MediaTypeSeries, Title: "Dark"}

	items, err := m.AddToWatchlist(ctx, req)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, storage.WatchStatusToWatch, items[0].Status)

	items, err = m.AddToWatchlist(ctx, req)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = m.UpdateWatchStatus(ctx, UpdateStatusRequest{ID: 70523, Status: storage.WatchStatusWatching})
	require.NoError(t, err)
	assert.Equal(t, storage.WatchStatusWatching, items[0].Status)

	t.Run("invalid status is rejected before it reaches the store", func(t *testing.T) {
		_, err := m.UpdateWatchStatus(ctx, UpdateStatusRequest{ID: 70523, Status: "bingeing"})
		assert.ErrorIs(t, err, ErrInvalidRequest)

		items, err := m.ListWatchlist(ctx)
		require.NoError(t, err)
		assert.Equal(t, storage.WatchStatusWatching, items[0].Status)
	})
}

func TestCatalogManager_Ratings(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	rating, err := m.SetRating(ctx, SetRatingRequest{ID: 129, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, rating)

	rating, err = m.GetRating(ctx, 129)
	require.NoError(t, err)
	assert.Equal(t, 5, rating)

	t.Run("out of range ratings are rejected", func(t *testing.T) {
		_, err := m.SetRating(ctx, SetRatingRequest{ID: 129, Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRequest)

		_, err = m.SetRating(ctx, SetRatingRequest{ID: 129, Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	require.NoError(t, m.RemoveRating(ctx, 129))

	rating, err = m.GetRating(ctx, 129)
	require.NoError(t, err)
	assert.Equal(t, 0, rating)
}

func TestCatalogManager_Comments(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	thread, err := m.AddComment(ctx, AddCommentRequest{ItemID: 129, Text: "Magnifique !"})
	require.NoError(t, err)
	require.Len(t, thread, 1)

	parentID := thread[0].ID
	thread, err = m.AddComment(ctx, AddCommentRequest{ItemID: 129, Text: "Tout à fait", ParentID: &parentID})
	require.NoError(t, err)
	require.Len(t, thread, 2)

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := m.AddComment(ctx, AddCommentRequest{ItemID: 129})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	thread, err = m.DeleteComment(ctx, 129, parentID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}

func TestCatalogManager_SearchHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	collections := kv.NewCollections(mem.New(), 5)
	m := New(client, collections)

	_, err := collections.History.Record(ctx, "batman")
	require.NoError(t, err)

	terms, err := m.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"batman"}, terms)

	require.NoError(t, m.ClearSearchHistory(ctx))

	terms, err = m.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}
