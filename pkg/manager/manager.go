package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/storage"
	"github.com/Sofiane224434/cinetech/pkg/tmdb"
	"github.com/go-playground/validator/v10"
)

type TMDBClientInterface tmdb.ClientInterface

// ErrInvalidRequest wraps request validation failures.
var ErrInvalidRequest = errors.New("invalid request")

// CatalogManager fronts the remote catalog and the local user collections.
// The stores underneath are permissive; the manager is where requests are
// validated and duplicate adds are gated.
type CatalogManager struct {
	tmdb        TMDBClientInterface
	collections storage.Collections
	validate    *validator.Validate
}

func New(tmdbClient TMDBClientInterface, collections storage.Collections) CatalogManager {
	return CatalogManager{
		tmdb:        tmdbClient,
		collections: collections,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// PopularMovies lists popular movies from the catalog
func (m CatalogManager) PopularMovies(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return m.tmdb.PopularMovies(ctx, page)
}

// TrendingMovies lists this week's trending movies
func (m CatalogManager) TrendingMovies(ctx context.Context, page int) (*tmdb.Page[tmdb.Movie], error) {
	return m.tmdb.TrendingMovies(ctx, page)
}

// PopularSeries lists popular series from the catalog
func (m CatalogManager) PopularSeries(ctx context.Context, page int) (*tmdb.Page[tmdb.Series], error) {
	return m.tmdb.PopularSeries(ctx, page)
}

// TrendingSeries lists this week's trending series
func (m CatalogManager) TrendingSeries(ctx context.Context, page int) (*tmdb.Page[tmdb.Series], error) {
	return m.tmdb.TrendingSeries(ctx, page)
}

// DiscoverAnime lists popular japanese animated series
func (m CatalogManager) DiscoverAnime(ctx context.Context, page int) (*tmdb.Page[tmdb.Series], error) {
	return m.tmdb.DiscoverAnime(ctx, page)
}

// MovieDetails fetches a movie with credits, similar titles and reviews
func (m CatalogManager) MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error) {
	return m.tmdb.MovieDetails(ctx, id)
}

// SeriesDetails fetches a series with credits, similar titles and reviews
func (m CatalogManager) SeriesDetails(ctx context.Context, id int64) (*tmdb.SeriesDetails, error) {
	return m.tmdb.SeriesDetails(ctx, id)
}

// MovieVideos lists trailers and clips for a movie
func (m CatalogManager) MovieVideos(ctx context.Context, id int64) (*tmdb.VideoList, error) {
	return m.tmdb.MovieVideos(ctx, id)
}

// SeriesVideos lists trailers and clips for a series
func (m CatalogManager) SeriesVideos(ctx context.Context, id int64) (*tmdb.VideoList, error) {
	return m.tmdb.SeriesVideos(ctx, id)
}

// ListFavorites returns the saved favorites in insertion order
func (m CatalogManager) ListFavorites(ctx context.Context) ([]storage.StoredItem, error) {
	return m.collections.Favorites.List(ctx)
}

// AddFavorite saves an item as a favorite. Adding an item that is already a
// favorite leaves the list unchanged.
func (m CatalogManager) AddFavorite(ctx context.Context, req AddItemRequest) ([]storage.StoredItem, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	saved, err := m.collections.Favorites.IsFavorite(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if saved {
		logger.FromCtx(ctx).Debugw("already a favorite", "id", req.ID)
		return m.collections.Favorites.List(ctx)
	}

	return m.collections.Favorites.Add(ctx, req.ref(), req.Type)
}

func (m CatalogManager) RemoveFavorite(ctx context.Context, id int64) ([]storage.StoredItem, error) {
	return m.collections.Favorites.Remove(ctx, id)
}

func (m CatalogManager) IsFavorite(ctx context.Context, id int64) (bool, error) {
	return m.collections.Favorites.IsFavorite(ctx, id)
}

// ListWatchlist returns the watchlist in insertion order
func (m CatalogManager) ListWatchlist(ctx context.Context) ([]storage.StoredItem, error) {
	return m.collections.Watchlist.List(ctx)
}

// AddToWatchlist saves an item to watch later. Adding an item already on the
// list leaves it unchanged.
func (m CatalogManager) AddToWatchlist(ctx context.Context, req AddItemRequest) ([]storage.StoredItem, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	listed, err := m.collections.Watchlist.IsListed(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if listed {
		logger.FromCtx(ctx).Debugw("already on the watchlist", "id", req.ID)
		return m.collections.Watchlist.List(ctx)
	}

	return m.collections.Watchlist.Add(ctx, req.ref(), req.Type)
}

func (m CatalogManager) RemoveFromWatchlist(ctx context.Context, id int64) ([]storage.StoredItem, error) {
	return m.collections.Watchlist.Remove(ctx, id)
}

func (m CatalogManager) IsOnWatchlist(ctx context.Context, id int64) (bool, error) {
	return m.collections.Watchlist.IsListed(ctx, id)
}

// UpdateWatchStatus moves a watchlist entry through its lifecycle
func (m CatalogManager) UpdateWatchStatus(ctx context.Context, req UpdateStatusRequest) ([]storage.StoredItem, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return m.collections.Watchlist.UpdateStatus(ctx, req.ID, req.Status)
}

// GetRating returns the stored rating for an item, 0 when unrated
func (m CatalogManager) GetRating(ctx context.Context, id int64) (int, error) {
	return m.collections.Ratings.Get(ctx, id)
}

// AllRatings returns every stored rating keyed by item id
func (m CatalogManager) AllRatings(ctx context.Context) (map[string]int, error) {
	return m.collections.Ratings.All(ctx)
}

// SetRating stores a 1 to 5 star rating for an item
func (m CatalogManager) SetRating(ctx context.Context, req SetRatingRequest) (int, error) {
	if err := m.validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return m.collections.Ratings.Set(ctx, req.ID, req.Rating)
}

// RemoveRating clears the rating for an item
func (m CatalogManager) RemoveRating(ctx context.Context, id int64) error {
	return m.collections.Ratings.Remove(ctx, id)
}

// ListComments returns the comment thread for an item
func (m CatalogManager) ListComments(ctx context.Context, itemID int64) ([]storage.Comment, error) {
	return m.collections.Comments.List(ctx, itemID)
}

// AddComment appends a comment or a reply to an item's thread
func (m CatalogManager) AddComment(ctx context.Context, req AddCommentRequest) ([]storage.Comment, error) {
	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return m.collections.Comments.Add(ctx, req.ItemID, req.Text, req.ParentID)
}

// DeleteComment removes a comment and its direct replies
func (m CatalogManager) DeleteComment(ctx context.Context, itemID, commentID int64) ([]storage.Comment, error) {
	return m.collections.Comments.Delete(ctx, itemID, commentID)
}

// SearchHistory returns the recent selected search terms
func (m CatalogManager) SearchHistory(ctx context.Context) ([]string, error) {
	return m.collections.History.List(ctx)
}

// ClearSearchHistory empties the recent search terms
func (m CatalogManager) ClearSearchHistory(ctx context.Context) error {
	return m.collections.History.Clear(ctx)
}
