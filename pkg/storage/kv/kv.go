// Package kv implements the user-state collections as JSON documents layered
// over a storage.KeyValue adapter. Every mutation reads the full current
// payload, changes it in memory, and writes the full payload back; there is
// no partial update and no cross-process coordination (last writer wins).
package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Sofiane224434/cinetech/pkg/logger"
	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// NewCollections wires all collections over the same adapter.
func NewCollections(kvs storage.KeyValue, historyLimit int) storage.Collections {
	return storage.Collections{
		Favorites: NewFavorites(kvs),
		Watchlist: NewWatchlist(kvs),
		Ratings:   NewRatings(kvs),
		Comments:  NewComments(kvs),
		History:   NewHistory(kvs, historyLimit),
	}
}

// read decodes the payload stored under key into a fresh T. A missing key or
// a malformed payload yields the zero-value default; never-written and
// corrupted are deliberately indistinguishable. Adapter failures other than
// absence are returned as-is.
func read[T any](ctx context.Context, kvs storage.KeyValue, key string, def T) (T, error) {
	raw, err := kvs.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.FromCtx(ctx).Debugw("discarding malformed payload", "key", key, "error", err)
		return def, nil
	}

	return out, nil
}

func write(ctx context.Context, kvs storage.KeyValue, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return kvs.Set(ctx, key, string(raw))
}
