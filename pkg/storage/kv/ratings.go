package kv

import (
	"context"
	"strconv"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// Ratings persists the id-to-stars mapping under the ratings key. Ids are
// stored as string keys in the JSON object.
type Ratings struct {
	kv storage.KeyValue
}

func NewRatings(kvs storage.KeyValue) *Ratings {
	return &Ratings{kv: kvs}
}

func ratingKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// All returns the full rating mapping.
func (r *Ratings) All(ctx context.Context) (map[string]int, error) {
	return read(ctx, r.kv, storage.KeyRatings, map[string]int{})
}

// Get returns the rating for an item, 0 when unrated.
func (r *Ratings) Get(ctx context.Context, id int64) (int, error) {
	ratings, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	return ratings[ratingKey(id)], nil
}

// Set overwrites the rating for an item and returns the stored value. The
// range is not validated here; callers only pass 1..5 and use Remove instead
// of storing a zero.
func (r *Ratings) Set(ctx context.Context, id int64, rating int) (int, error) {
	ratings, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	if ratings == nil {
		ratings = make(map[string]int)
	}
	ratings[ratingKey(id)] = rating

	if err := write(ctx, r.kv, storage.KeyRatings, ratings); err != nil {
		return 0, err
	}

	return rating, nil
}

// Remove deletes the rating for an item. It is a no-op when the item is
// unrated.
func (r *Ratings) Remove(ctx context.Context, id int64) error {
	ratings, err := r.All(ctx)
	if err != nil {
		return err
	}

	key := ratingKey(id)
	if _, ok := ratings[key]; !ok {
		return nil
	}

	delete(ratings, key)
	return write(ctx, r.kv, storage.KeyRatings, ratings)
}
