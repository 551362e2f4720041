package storage

import (
	"context"
	"errors"
	"strconv"
)

var ErrNotFound = errors.New("not found in storage")

// KeyValue is the persistence port every collection reads and writes
// through. Values are JSON text; each collection owns its key and performs a
// full read-modify-write on every mutation. Adapters are expected to make
// writes immediately visible to subsequent reads.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Keys of the persisted collections. Collections never touch each other's
// keys.
const (
	KeyFavorites     = "favorites"
	KeyWatchlist     = "watchlist"
	KeyRatings       = "ratings"
	KeySearchHistory = "searchHistory"
)

// CommentsKey returns the storage key holding the comment thread for an item.
func CommentsKey(itemID int64) string {
	return "comments:" + strconv.FormatInt(itemID, 10)
}

// FavoriteStore manages the saved-favorites collection. Add appends without
// checking for duplicates; callers gate on IsFavorite first.
type FavoriteStore interface {
	List(ctx context.Context) ([]StoredItem, error)
	Add(ctx context.Context, ref MediaRef, mediaType MediaType) ([]StoredItem, error)
	Remove(ctx context.Context, id int64) ([]StoredItem, error)
	IsFavorite(ctx context.Context, id int64) (bool, error)
}

// WatchlistStore manages the watchlist collection. Entries carry a watch
// status that defaults to WatchStatusToWatch on add.
type WatchlistStore interface {
	List(ctx context.Context) ([]StoredItem, error)
	Add(ctx context.Context, ref MediaRef, mediaType MediaType) ([]StoredItem, error)
	Remove(ctx context.Context, id int64) ([]StoredItem, error)
	IsListed(ctx context.Context, id int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status WatchStatus) ([]StoredItem, error)
}

// RatingStore maps item ids to 1-5 star ratings. A missing id reads as 0;
// removing deletes the key rather than storing a zero. The store does not
// validate the range.
type RatingStore interface {
	Get(ctx context.Context, id int64) (int, error)
	Set(ctx context.Context, id int64, rating int) (int, error)
	Remove(ctx context.Context, id int64) error
	All(ctx context.Context) (map[string]int, error)
}

// CommentStore manages per-item comment threads. Deleting a comment also
// removes its direct replies.
type CommentStore interface {
	List(ctx context.Context, itemID int64) ([]Comment, error)
	Add(ctx context.Context, itemID int64, text string, parentID *int64) ([]Comment, error)
	Delete(ctx context.Context, itemID, commentID int64) ([]Comment, error)
}

// SearchHistoryStore keeps the most recent selected search terms,
// deduplicated and most-recent-first.
type SearchHistoryStore interface {
	List(ctx context.Context) ([]string, error)
	Record(ctx context.Context, term string) ([]string, error)
	Clear(ctx context.Context) error
}

// Collections bundles the user-state stores handed around together.
type Collections struct {
	Favorites FavoriteStore
	Watchlist WatchlistStore
	Ratings   RatingStore
	Comments  CommentStore
	History   SearchHistoryStore
}
