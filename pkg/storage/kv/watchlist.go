package kv

import (
	"context"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// Watchlist persists items to watch under the watchlist key. Entries carry a
// watch status on top of the favorites shape.
type Watchlist struct {
	kv storage.KeyValue
}

func NewWatchlist(kvs storage.KeyValue) *Watchlist {
	return &Watchlist{kv: kvs}
}

// List returns the watchlist in insertion order.
func (w *Watchlist) List(ctx context.Context) ([]storage.StoredItem, error) {
	return read(ctx, w.kv, storage.KeyWatchlist, []storage.StoredItem{})
}

// Add appends an entry with status to_watch and returns the updated list. It
// does not check for duplicates; callers gate on IsListed first.
func (w *Watchlist) Add(ctx context.Context, ref storage.MediaRef, mediaType storage.MediaType) ([]storage.StoredItem, error) {
	items, err := w.List(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, storage.StoredItem{
		ID:         ref.ID,
		Type:       mediaType,
		Title:      ref.Title,
		PosterPath: ref.PosterPath,
		AddedAt:    time.Now().UnixMilli(),
		Status:     storage.WatchStatusToWatch,
	})

	if err := write(ctx, w.kv, storage.KeyWatchlist, items); err != nil {
		return nil, err
	}

	return items, nil
}

// Remove drops the entry with the given id and returns the updated list. It
// is a no-op when the id is absent.
func (w *Watchlist) Remove(ctx context.Context, id int64) ([]storage.StoredItem, error) {
	items, err := w.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]storage.StoredItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := write(ctx, w.kv, storage.KeyWatchlist, kept); err != nil {
		return nil, err
	}

	return kept, nil
}

// IsListed reports whether an entry with the given id exists.
func (w *Watchlist) IsListed(ctx context.Context, id int64) (bool, error) {
	items, err := w.List(ctx)
	if err != nil {
		return false, err
	}

	for _, item := range items {
		if item.ID == id {
			return true, nil
		}
	}

	return false, nil
}

// UpdateStatus replaces the status of the matching entry and returns the
// updated list. The status is stored verbatim; unknown values only matter at
// render time where the label lookup falls back.
func (w *Watchlist) UpdateStatus(ctx context.Context, id int64, status storage.WatchStatus) ([]storage.StoredItem, error) {
	items, err := w.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Status = status
		}
	}

	if err := write(ctx, w.kv, storage.KeyWatchlist, items); err != nil {
		return nil, err
	}

	return items, nil
}
