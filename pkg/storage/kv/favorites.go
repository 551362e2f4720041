package kv

import (
	"context"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// Favorites persists saved items under the favorites key.
type Favorites struct {
	kv storage.KeyValue
}

func NewFavorites(kvs storage.KeyValue) *Favorites {
	return &Favorites{kv: kvs}
}

// List returns the favorites in insertion order.
func (f *Favorites) List(ctx context.Context) ([]storage.StoredItem, error) {
	return read(ctx, f.kv, storage.KeyFavorites, []storage.StoredItem{})
}

// Add appends a favorite built from ref and returns the updated list. It
// does not check for duplicates; callers gate on IsFavorite first.
func (f *Favorites) Add(ctx context.Context, ref storage.MediaRef, mediaType storage.MediaType) ([]storage.StoredItem, error) {
	items, err := f.List(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, storage.StoredItem{
		ID:         ref.ID,
		Type:       mediaType,
		Title:      ref.Title,
		PosterPath: ref.PosterPath,
		AddedAt:    time.Now().UnixMilli(),
	})

	if err := write(ctx, f.kv, storage.KeyFavorites, items); err != nil {
		return nil, err
	}

	return items, nil
}

// Remove drops the entry with the given id and returns the updated list. It
// is a no-op when the id is absent.
func (f *Favorites) Remove(ctx context.Context, id int64) ([]storage.StoredItem, error) {
	items, err := f.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]storage.StoredItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := write(ctx, f.kv, storage.KeyFavorites, kept); err != nil {
		return nil, err
	}

	return kept, nil
}

// IsFavorite reports whether an entry with the given id exists.
func (f *Favorites) IsFavorite(ctx context.Context, id int64) (bool, error) {
	items, err := f.List(ctx)
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
